package system

import (
	"sync/atomic"

	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
	"github.com/lixenwraith/city-striker/vmath"
)

// PlayerSystem integrates held keys, gravity, jump and jetpack into the camera pose
type PlayerSystem struct {
	world *engine.World

	statBurns *atomic.Int64
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{
		world:     world,
		statBurns: world.Resources.Status.Ints.Get(status.KeyJetpackBurns),
	}
	s.Init()
	return s
}

// Init has no session state, the pose lives in PlayerResource
func (s *PlayerSystem) Init() {}

func (s *PlayerSystem) Name() string { return "player" }

func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventJetpackStart,
		event.EventJetpackStop,
	}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventJetpackStart:
		s.startJetpack()
	case event.EventJetpackStop:
		s.world.Resources.Player.JetpackActive = false
	}
}

// startJetpack consumes one charge unless a burn is still running
func (s *PlayerSystem) startJetpack() {
	res := s.world.Resources
	p := res.Player
	now := res.Time.GameTime

	if p.JetpackActive && now.Sub(p.JetpackStartedAt) < parameter.JetpackDuration {
		return
	}
	if !res.Game.State.UseJetpackCharge() {
		return
	}
	p.JetpackActive = true
	p.JetpackStartedAt = now
	s.statBurns.Add(1)
}

func (s *PlayerSystem) Update() {
	res := s.world.Resources
	p := res.Player
	in := res.Input.Current
	dt := res.Time.DeltaTime.Seconds()
	now := res.Time.GameTime

	// Ground movement replaces horizontal velocity every tick
	intent := vmath.Vec3F{
		X: axis(in.Right, in.Left),
		Z: axis(in.Back, in.Forward),
	}
	move := vmath.V3FRotateYaw(vmath.V3FScale(vmath.V3FNormalize(intent), parameter.PlayerMoveSpeed), p.Yaw)
	p.Velocity.X = move.X
	p.Velocity.Z = move.Z

	// Vertical: gravity, then jump override, then thrust
	p.Velocity.Y -= parameter.PlayerGravity * dt
	if in.Jump && p.Position.Y <= parameter.PlayerJumpThreshold {
		p.Velocity.Y = parameter.PlayerJumpImpulse
	}
	if p.JetpackActive {
		if now.Sub(p.JetpackStartedAt) < parameter.JetpackDuration {
			p.Velocity.Y += parameter.JetpackThrust * dt
		} else {
			p.JetpackActive = false
		}
	}

	p.Position = vmath.V3FAdd(p.Position, vmath.V3FScale(p.Velocity, dt))
	if p.Position.Y < parameter.PlayerGroundHeight {
		p.Position.Y = parameter.PlayerGroundHeight
		p.Velocity.Y = 0
	}
}

// axis maps an opposed key pair to -1, 0 or 1
func axis(positive, negative bool) float64 {
	v := 0.0
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
