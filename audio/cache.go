package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/city-striker/core"
)

// cueCache stores rendered unity-gain cue buffers
type cueCache struct {
	mu    sync.RWMutex
	sr    beep.SampleRate
	store [core.SoundTypeCount][][2]float64
}

func newCueCache(sr beep.SampleRate) *cueCache {
	return &cueCache{sr: sr}
}

// get returns the cached buffer, rendering it on first use
func (c *cueCache) get(st core.SoundType) ([][2]float64, error) {
	if st < 0 || st >= core.SoundTypeCount {
		return renderCue(c.sr, st)
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store[st] != nil {
		return c.store[st], nil
	}

	buf, err := renderCue(c.sr, st)
	if err != nil {
		return nil, err
	}
	c.store[st] = buf
	return buf, nil
}

// preload renders every cue
func (c *cueCache) preload() error {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if _, err := c.get(st); err != nil {
			return err
		}
	}
	return nil
}
