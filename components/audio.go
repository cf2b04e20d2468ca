package components

import (
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues for the host to play (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
	// Played counts every cue ever queued, for logging and tests.
	Played map[cfg.SoundID]int
}

func (a *AudioData) Play(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
	if a.Played == nil {
		a.Played = map[cfg.SoundID]int{}
	}
	a.Played[id]++
}

var Audio = donburi.NewComponentType[AudioData]()
