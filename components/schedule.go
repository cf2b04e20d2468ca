package components

import (
	"github.com/automoto/kinematic-platformer/schedule"
	"github.com/yohamta/donburi"
)

// SchedulerData holds the delayed continuations (singleton component).
type SchedulerData struct {
	*schedule.Scheduler
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
