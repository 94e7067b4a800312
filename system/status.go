package system

import (
	"sync/atomic"

	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
)

// StatusSystem publishes live population gauges
type StatusSystem struct {
	world *engine.World

	statBullets *atomic.Int64
	statEnemies *atomic.Int64
}

func NewStatusSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &StatusSystem{
		world:       world,
		statBullets: reg.Ints.Get(status.KeyBullets),
		statEnemies: reg.Ints.Get(status.KeyEnemiesLive),
	}
}

func (s *StatusSystem) Init() {}

func (s *StatusSystem) Name() string { return "status" }

func (s *StatusSystem) Priority() int { return parameter.PriorityStatus }

func (s *StatusSystem) EventTypes() []event.EventType { return nil }

func (s *StatusSystem) HandleEvent(event.GameEvent) {}

func (s *StatusSystem) Update() {
	s.statBullets.Store(int64(s.world.Components.Bullet.CountEntity()))

	live := 0
	enemies := s.world.Components.Enemy
	for _, e := range enemies.AllEntity() {
		if enemy, ok := enemies.GetComponent(e); ok && enemy.Alive() {
			live++
		}
	}
	s.statEnemies.Store(int64(live))
}
