package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundHurt
	SoundRespawn
	SoundEnemyDeath
)

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundHurt:
		return "hurt"
	case SoundRespawn:
		return "respawn"
	case SoundEnemyDeath:
		return "ouch"
	default:
		return "none"
	}
}

// CueConfig describes a synthesized square-wave blip.
type CueConfig struct {
	Frequency float64 // Hz at the start of the blip
	Sweep     float64 // Hz added per second
	Duration  float64 // seconds
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	SFXVolume  float64 `yaml:"sfx_volume"`

	Cues map[SoundID]CueConfig `yaml:"-"`
}

func defaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		Cues: map[SoundID]CueConfig{
			SoundJump:       {Frequency: 440, Sweep: 1200, Duration: 0.12},
			SoundHurt:       {Frequency: 220, Sweep: -600, Duration: 0.25},
			SoundRespawn:    {Frequency: 330, Sweep: 900, Duration: 0.3},
			SoundEnemyDeath: {Frequency: 180, Sweep: -300, Duration: 0.2},
		},
	}
}
