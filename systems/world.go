package systems

import (
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/level"
	"github.com/automoto/kinematic-platformer/schedule"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// Used when a world was built without a Settings singleton, e.g. in tests.
var fallbackConfig = cfg.Default()

func settingsOf(w donburi.World) *cfg.Config {
	if e, ok := components.Settings.First(w); ok {
		if s := components.Settings.Get(e); s.Config != nil {
			return s.Config
		}
	}
	return fallbackConfig
}

func spaceOf(w donburi.World) *level.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e).Space
	}
	return nil
}

func ragdollSpaceOf(w donburi.World) *cp.Space {
	if e, ok := components.RagdollSpace.First(w); ok {
		return components.RagdollSpace.Get(e).Space
	}
	return nil
}

func schedulerOf(w donburi.World) *schedule.Scheduler {
	if e, ok := components.Scheduler.First(w); ok {
		return components.Scheduler.Get(e).Scheduler
	}
	return nil
}

func progressOf(w donburi.World) *components.ProgressData {
	if e, ok := components.Progress.First(w); ok {
		return components.Progress.Get(e)
	}
	return nil
}

// playSound queues a cue. Worlds without an audio singleton stay silent.
func playSound(w donburi.World, id cfg.SoundID) {
	if e, ok := components.Audio.First(w); ok {
		components.Audio.Get(e).Play(id)
	}
}
