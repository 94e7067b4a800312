package system

import (
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/vmath"
)

// EnemySystem runs pursue/retreat/hold movement and melee-range attacks
// Movement and attack are independent; an enemy may back away and attack in the same tick
type EnemySystem struct {
	world  *engine.World
	combat *CombatResolver
}

func NewEnemySystem(world *engine.World, combat *CombatResolver) engine.System {
	s := &EnemySystem{world: world, combat: combat}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *EnemySystem) Update() {
	res := s.world.Resources
	state := res.Game.State
	now := res.Time.GameTime
	dt := res.Time.DeltaTime.Seconds()
	player := res.Player.Position

	enemies := s.world.Components.Enemy
	kinetics := s.world.Components.Kinetic

	for _, e := range enemies.AllEntity() {
		// An attack earlier in this pass may have ended the run
		if state.IsOver() {
			return
		}

		enemy, _ := enemies.GetComponent(e)
		kin, ok := kinetics.GetComponent(e)
		if !ok || !enemy.Alive() {
			continue
		}

		dist := vmath.V3FPlanarDist(kin.Position, player)
		toPlayer := vmath.V3FNormalize(vmath.Vec3F{X: player.X - kin.Position.X, Z: player.Z - kin.Position.Z})

		var speed float64
		switch {
		case dist > parameter.EnemyFarThreshold:
			speed = parameter.EnemySpeed
		case dist < parameter.EnemyNearThreshold:
			speed = -parameter.EnemySpeed * parameter.EnemyRetreatFactor
		}

		// Holding reports zero velocity
		kin.Velocity = vmath.Vec3F{}
		if dt > 0 && speed != 0 {
			kin.Velocity = vmath.V3FScale(toPlayer, speed)
			kin.Position = vmath.V3FAdd(kin.Position, vmath.V3FScale(kin.Velocity, dt))
		}
		kinetics.SetComponent(e, kin)

		if dist < parameter.EnemyAttackRange &&
			(enemy.LastAttack.IsZero() || now.Sub(enemy.LastAttack) > enemy.AttackCooldown) {
			s.combat.ResolveEnemyAttack(&enemy, now)
			enemies.SetComponent(e, enemy)
		}
	}
}
