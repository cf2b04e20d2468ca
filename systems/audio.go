package systems

import (
	"log"

	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/yohamta/donburi/ecs"
)

// SoundPlayer plays a cue once.
type SoundPlayer interface {
	Play(id cfg.SoundID)
}

// soundPlayer is set by the host; without one cues are only logged.
var soundPlayer SoundPlayer

// SetSoundPlayer installs the output for queued cues. nil silences audio.
func SetSoundPlayer(p SoundPlayer) {
	soundPlayer = p
}

// UpdateAudio drains the queued cues into the sound player.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	logEvents := settingsOf(e.World).Debug.LogEvents
	for _, soundID := range audioData.PendingSFX {
		if logEvents {
			log.Printf("sound %s", soundID)
		}
		if soundPlayer != nil {
			soundPlayer.Play(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}
