package system

import (
	"sync/atomic"

	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
)

// AudioSystem flushes the cues committed during the tick to the audio player
// Cues stay readable for snapshots after the flush
type AudioSystem struct {
	world *engine.World

	statPlayed *atomic.Int64
}

func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world:      world,
		statPlayed: world.Resources.Status.Ints.Get(status.KeyAudioPlayed),
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *AudioSystem) Update() {
	cues := s.world.Resources.Cue.Flush()
	if len(cues) == 0 {
		return
	}

	audio := s.world.Resources.Audio
	if audio == nil || audio.Player == nil || !audio.Player.IsRunning() {
		return
	}
	for _, cue := range cues {
		if audio.Player.Play(cue) {
			s.statPlayed.Add(1)
		}
	}
}
