package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProgressData is the saved progress of the current run (singleton
// component).
type ProgressData struct {
	Deaths int
	Stomps int
	Spawn  dmath.Vec2
	// Dirty is set when the counters changed since the last save.
	Dirty bool
}

var Progress = donburi.NewComponentType[ProgressData]()
