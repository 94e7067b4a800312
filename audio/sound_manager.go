package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/parameter"
)

// deviceOpener starts continuous playback of s on an output device
type deviceOpener func(sr beep.SampleRate, bufferSize int, s beep.Streamer) error

func openSpeaker(sr beep.SampleRate, bufferSize int, s beep.Streamer) error {
	if err := speaker.Init(sr, bufferSize); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func closeSpeaker() {
	speaker.Clear()
	speaker.Close()
}

// SoundManager mixes cue streams into a single speaker output
type SoundManager struct {
	mu     sync.Mutex // Protects config and mixer
	config *AudioConfig
	mixer  *beep.Mixer
	cache  *cueCache
	logger *log.Logger

	open  deviceOpener
	close func()

	running atomic.Bool
	muted   atomic.Bool
	silent  atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a sound manager, nil arguments select defaults
func NewSoundManager(cfg *AudioConfig, logger *log.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if logger == nil {
		logger = log.Default()
	}

	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		cache:  newCueCache(beep.SampleRate(cfg.SampleRate)),
		logger: logger,
		open:   openSpeaker,
		close:  closeSpeaker,
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Start renders the cues and opens the output device
// A device that cannot be opened leaves the manager running in silent mode
func (sm *SoundManager) Start() error {
	if sm.running.Load() {
		return fmt.Errorf("sound manager already running")
	}

	if err := sm.cache.preload(); err != nil {
		return fmt.Errorf("render cues: %w", err)
	}

	sr := beep.SampleRate(sm.config.SampleRate)
	if err := sm.open(sr, sr.N(parameter.AudioBufferLength), sm.output()); err != nil {
		sm.logger.Printf("audio: device unavailable, silent mode: %v", err)
		sm.silent.Store(true)
	}

	sm.running.Store(true)
	return nil
}

// Stop clears pending streams and releases the device
func (sm *SoundManager) Stop() {
	if !sm.running.CompareAndSwap(true, false) {
		return
	}

	sm.mu.Lock()
	sm.mixer.Clear()
	sm.mu.Unlock()

	if !sm.silent.Load() && sm.close != nil {
		sm.close()
	}
}

// output wraps the mixer so the device goroutine streams under the manager lock
func (sm *SoundManager) output() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		return sm.mixer.Stream(samples)
	})
}

// Enqueue adds a cue to the mix
func (sm *SoundManager) Enqueue(st core.SoundType) error {
	switch {
	case !sm.running.Load():
		return ErrNotInitialized
	case sm.muted.Load():
		sm.dropped.Add(1)
		return ErrMuted
	case sm.silent.Load():
		sm.dropped.Add(1)
		return ErrNoDevice
	}

	buf, err := sm.cache.get(st)
	if err != nil {
		return err
	}

	sm.mu.Lock()
	master := sm.config.MasterVolume
	sm.mixer.Add(&effects.Volume{
		Streamer: &sampleStreamer{data: buf},
		Base:     2,
		Volume:   math.Log2(math.Max(master, 1e-6)),
		Silent:   master <= 0,
	})
	sm.mu.Unlock()

	sm.played.Add(1)
	return nil
}

// Play queues a cue, returns false when it will not be heard
func (sm *SoundManager) Play(st core.SoundType) bool {
	return sm.Enqueue(st) == nil
}

// ToggleMute toggles mute state, returns true if now audible
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning returns true once started, including silent mode
func (sm *SoundManager) IsRunning() bool {
	return sm.running.Load()
}

// IsSilent reports whether the device failed to open
func (sm *SoundManager) IsSilent() bool {
	return sm.silent.Load()
}

// SetVolume updates master volume (0.0-1.0) for subsequently queued cues
func (sm *SoundManager) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	sm.mu.Lock()
	sm.config.MasterVolume = vol
	sm.mu.Unlock()
}

// ActiveCount returns the number of cues still playing
func (sm *SoundManager) ActiveCount() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}

// GetStats returns played and dropped counts
func (sm *SoundManager) GetStats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}
