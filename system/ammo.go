package system

import (
	"sync/atomic"

	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
)

// AmmoSystem owns the reload state machine
// Idle -> Reloading on EventReloadRequest, Reloading -> Idle when the reload timer fires
type AmmoSystem struct {
	world *engine.World

	statReloads *atomic.Int64
}

func NewAmmoSystem(world *engine.World) engine.System {
	s := &AmmoSystem{
		world:       world,
		statReloads: world.Resources.Status.Ints.Get(status.KeyReloads),
	}
	s.Init()
	return s
}

// Init has no session state, the reload machine lives in GameState
func (s *AmmoSystem) Init() {}

func (s *AmmoSystem) Name() string { return "ammo" }

func (s *AmmoSystem) Priority() int { return parameter.PriorityAmmo }

func (s *AmmoSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventReloadRequest,
		event.EventReloadComplete,
	}
}

func (s *AmmoSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventReloadRequest:
		s.startReload()
	case event.EventReloadComplete:
		s.completeReload()
	}
}

// Update implements System interface (reload progress is timer driven)
func (s *AmmoSystem) Update() {}

func (s *AmmoSystem) startReload() {
	res := s.world.Resources
	now := res.Time.GameTime
	if !res.Game.State.BeginReload(now) {
		return
	}
	res.Timer.Schedule(now.Add(parameter.ReloadDuration), event.GameEvent{
		Type:  event.EventReloadComplete,
		Frame: res.Time.FrameNumber,
	})
	s.statReloads.Add(1)
	s.world.Emit(core.SoundReload)
}

func (s *AmmoSystem) completeReload() {
	res := s.world.Resources
	moved := res.Game.State.CompleteReload()
	res.Log.Printf("ammo: reload complete, %d rounds moved (mag %d, reserve %d)",
		moved, res.Game.State.GetAmmo(), res.Game.State.GetReserveAmmo())
}
