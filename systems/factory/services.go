package factory

import (
	"github.com/automoto/kinematic-platformer/archetypes"
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/schedule"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateSettings(ecs *ecs.ECS, c *cfg.Config) *donburi.Entry {
	e := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(e, components.SettingsData{Config: c})
	return e
}

func CreateScheduler(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Scheduler.Spawn(ecs)
	components.Scheduler.SetValue(e, components.SchedulerData{Scheduler: schedule.NewScheduler()})
	return e
}

func CreateAudio(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Audio.Spawn(ecs)
	components.Audio.SetValue(e, components.AudioData{Played: map[cfg.SoundID]int{}})
	return e
}

func CreateProgress(ecs *ecs.ECS, spawn dmath.Vec2) *donburi.Entry {
	e := archetypes.Progress.Spawn(ecs)
	components.Progress.SetValue(e, components.ProgressData{Spawn: spawn})
	return e
}

// CreateCamera places the camera on position, in level pixels.
func CreateCamera(ecs *ecs.ECS, position dmath.Vec2) *donburi.Entry {
	e := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(e, components.CameraData{Position: position})
	return e
}
