package system

import (
	"sync/atomic"

	"github.com/lixenwraith/city-striker/component"
	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
	"github.com/lixenwraith/city-striker/vmath"
)

// ProjectileSystem spawns bullets on shoot requests and advances them each tick
// Bullet velocity is a per-tick step and is not scaled by frame time
type ProjectileSystem struct {
	world  *engine.World
	combat *CombatResolver

	statShots *atomic.Int64
}

func NewProjectileSystem(world *engine.World, combat *CombatResolver) engine.System {
	s := &ProjectileSystem{
		world:     world,
		combat:    combat,
		statShots: world.Resources.Status.Ints.Get(status.KeyShotsFired),
	}
	s.Init()
	return s
}

// Init has no session state, bullets are cleared with the world
func (s *ProjectileSystem) Init() {}

func (s *ProjectileSystem) Name() string { return "projectile" }

func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventShootRequest,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventShootRequest:
		s.shoot()
	}
}

// shoot spends a round and spawns a bullet below the camera along the view direction
// An empty magazine requests a reload instead when reserve remains
func (s *ProjectileSystem) shoot() {
	res := s.world.Resources
	state := res.Game.State

	if state.GetReloadState() == engine.ReloadReloading {
		return
	}
	if state.GetAmmo() == 0 {
		if state.GetReserveAmmo() > 0 {
			s.world.PushEvent(event.EventReloadRequest, nil)
		}
		return
	}
	if !state.SpendRound() {
		return
	}

	p := res.Player
	origin := vmath.V3FSub(p.Position, vmath.Vec3F{Y: parameter.BulletMuzzleDrop})
	step := vmath.V3FScale(p.ViewDirection(), parameter.BulletSpeed)

	e := s.world.CreateEntity()
	s.world.Components.Kinetic.SetComponent(e, component.KineticComponent{Position: origin, Velocity: step})
	s.world.Components.Bullet.SetComponent(e, component.BulletComponent{CreatedAt: res.Time.GameTime})

	s.statShots.Add(1)
	s.world.Emit(core.SoundShot)
}

func (s *ProjectileSystem) Update() {
	now := s.world.Resources.Time.GameTime
	bullets := s.world.Components.Bullet
	kinetics := s.world.Components.Kinetic

	var toDestroy []core.Entity
	for _, e := range bullets.AllEntity() {
		bullet, _ := bullets.GetComponent(e)
		kin, ok := kinetics.GetComponent(e)
		if !ok || bullet.Expired(now, parameter.BulletTTL) {
			toDestroy = append(toDestroy, e)
			continue
		}

		candidate := vmath.V3FAdd(kin.Position, kin.Velocity)
		if s.combat.ResolveBulletHit(candidate) {
			toDestroy = append(toDestroy, e)
			continue
		}
		kin.Position = candidate
		kinetics.SetComponent(e, kin)
	}

	s.world.DestroyEntities(toDestroy)
}
