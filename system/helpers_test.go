package system

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/lixenwraith/city-striker/component"
	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/vmath"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

const tick = 16 * time.Millisecond

type testRig struct {
	t      *testing.T
	world  *engine.World
	sched  *engine.Scheduler
	combat *CombatResolver
	audio  *fakeAudio
}

// newTestRig wires every system in phase order
// withWave controls whether the wave director (and its opening population) is registered
func newTestRig(t *testing.T, withWave bool) *testRig {
	t.Helper()
	res := engine.NewResource(event.NewEventQueue(), 42, log.New(io.Discard, "", 0))
	audio := &fakeAudio{running: true}
	res.Audio = &engine.AudioResource{Player: audio}

	w := engine.NewWorld(res)
	s := engine.NewScheduler(w, engine.NewMockTimeProvider(testEpoch))
	combat := NewCombatResolver(w)

	s.Register(NewAmmoSystem(w))
	s.Register(NewPlayerSystem(w))
	s.Register(NewProjectileSystem(w, combat))
	s.Register(NewEnemySystem(w, combat))
	if withWave {
		s.Register(NewWaveSystem(w))
	}
	s.Register(NewAudioSystem(w))
	s.Register(NewStatusSystem(w))

	return &testRig{t: t, world: w, sched: s, combat: combat, audio: audio}
}

func (r *testRig) state() *engine.GameState {
	return r.world.Resources.Game.State
}

func (r *testRig) push(et event.EventType) {
	r.world.Resources.Event.Queue.Push(event.GameEvent{Type: et})
}

func (r *testRig) step(dt time.Duration, n int) {
	for i := 0; i < n; i++ {
		r.sched.Tick(dt)
	}
}

func (r *testRig) setInput(in engine.InputState) {
	r.world.Resources.Input.Set(in)
}

func (r *testRig) restore(mut func(s *engine.GameStateSnapshot)) {
	s := r.state().Snapshot()
	mut(&s)
	r.state().Restore(s)
}

func (r *testRig) placeEnemy(pos vmath.Vec3F, health int) core.Entity {
	e := r.world.CreateEntity()
	r.world.Components.Kinetic.SetComponent(e, component.KineticComponent{Position: pos})
	r.world.Components.Enemy.SetComponent(e, component.EnemyComponent{
		Health:         health,
		MaxHealth:      health,
		AttackCooldown: 2 * time.Second,
	})
	return e
}

func (r *testRig) enemy(e core.Entity) component.EnemyComponent {
	r.t.Helper()
	enemy, ok := r.world.Components.Enemy.GetComponent(e)
	if !ok {
		r.t.Fatalf("enemy %d missing", e)
	}
	return enemy
}

func (r *testRig) position(e core.Entity) vmath.Vec3F {
	kin, _ := r.world.Components.Kinetic.GetComponent(e)
	return kin.Position
}

// parkEnemies moves every enemy far out of attack range
func (r *testRig) parkEnemies() {
	for i, e := range r.world.Components.Enemy.AllEntity() {
		r.world.Components.Kinetic.SetComponent(e, component.KineticComponent{
			Position: vmath.Vec3F{X: 200 + float64(i)*10, Z: 200},
		})
	}
}

func (r *testRig) liveEnemies() []component.EnemyComponent {
	var out []component.EnemyComponent
	for _, e := range r.world.Components.Enemy.AllEntity() {
		if enemy, ok := r.world.Components.Enemy.GetComponent(e); ok && enemy.Alive() {
			out = append(out, enemy)
		}
	}
	return out
}

type fakeAudio struct {
	running bool
	played  []core.SoundType
}

func (f *fakeAudio) Play(s core.SoundType) bool { f.played = append(f.played, s); return true }
func (f *fakeAudio) ToggleMute() bool            { return false }
func (f *fakeAudio) IsMuted() bool               { return false }
func (f *fakeAudio) IsRunning() bool             { return f.running }

func (f *fakeAudio) count(s core.SoundType) int {
	n := 0
	for _, p := range f.played {
		if p == s {
			n++
		}
	}
	return n
}
