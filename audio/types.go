package audio

import (
	"errors"

	"github.com/lixenwraith/city-striker/parameter"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownCue     = errors.New("unknown sound cue")
	ErrMuted          = errors.New("audio muted")
	ErrNoDevice       = errors.New("audio device unavailable")
)

// waveform selects the oscillator for a voice
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// DefaultAudioConfig returns the default playback settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterDefault,
		SampleRate:   parameter.AudioSampleRate,
	}
}
