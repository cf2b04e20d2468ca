package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes the sound cues once and plays them on demand.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
	config   cfg.AudioConfig
}

// NewAudioLoader creates a loader playing through ctx.
func NewAudioLoader(ctx *audio.Context, config cfg.AudioConfig) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		config:   config,
	}
}

// PreloadSFX synthesizes every configured cue so the first play does not lag.
func (l *AudioLoader) PreloadSFX() {
	for id := range l.config.Cues {
		l.pcm(id)
	}
}

// Play starts a new player for the cue. Unknown cues are ignored.
func (l *AudioLoader) Play(id cfg.SoundID) {
	if l.config.SFXVolume <= 0 {
		return
	}
	data := l.pcm(id)
	if data == nil {
		return
	}
	player := l.context.NewPlayerFromBytes(data)
	player.SetVolume(l.config.SFXVolume)
	player.Play()
}

func (l *AudioLoader) pcm(id cfg.SoundID) []byte {
	if data, ok := l.sfxCache[id]; ok {
		return data
	}
	cue, ok := l.config.Cues[id]
	if !ok {
		return nil
	}
	data := SynthesizeCue(cue, l.context.SampleRate())
	l.sfxCache[id] = data
	return data
}

// SynthesizeCue renders a square-wave blip as 16-bit little-endian stereo
// PCM, the format ebiten's audio players take. The pitch moves linearly by
// Sweep Hz per second and the volume fades out to avoid a click at the end.
func SynthesizeCue(cue cfg.CueConfig, sampleRate int) []byte {
	samples := int(cue.Duration * float64(sampleRate))
	if samples <= 0 {
		return nil
	}
	buf := make([]byte, samples*4)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		freq := math.Max(cue.Frequency+cue.Sweep*t, 1)
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		amp := 0.3 * (1 - float64(i)/float64(samples))
		if phase >= 0.5 {
			amp = -amp
		}
		v := int16(amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
