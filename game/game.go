// Package game is the host-facing facade over the simulation world
package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
	"github.com/lixenwraith/city-striker/system"
)

// Input is the held-key map and camera orientation for the next tick
type Input = engine.InputState

// Options configures a Game
type Options struct {
	// Seed drives spawn placement, 0 picks a time-based seed
	Seed uint64

	// Clock supplies the run epoch and wall time, defaults to the system clock
	Clock engine.TimeSource

	// Logger receives lifecycle lines, defaults to log.Default
	Logger *log.Logger

	// Audio receives cues after each tick, nil runs silent
	Audio engine.AudioPlayer
}

// Game owns one simulation world and its scheduler
// Edge-event and input methods are safe from any goroutine; ticks are serialized
type Game struct {
	world *engine.World
	sched *engine.Scheduler
	queue *event.EventQueue
	clock engine.TimeSource

	mu     sync.RWMutex
	runID  uuid.UUID
	latest Snapshot

	statRunID *status.AtomicString
}

// New builds the world and registers systems in phase order
func New(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(opts.Clock.Now().UnixNano())
	}

	queue := event.NewEventQueue()
	res := engine.NewResource(queue, opts.Seed, opts.Logger)
	if opts.Audio != nil {
		res.Audio = &engine.AudioResource{Player: opts.Audio}
	}

	world := engine.NewWorld(res)
	sched := engine.NewScheduler(world, opts.Clock)
	combat := system.NewCombatResolver(world)

	sched.Register(system.NewAmmoSystem(world))
	sched.Register(system.NewPlayerSystem(world))
	sched.Register(system.NewProjectileSystem(world, combat))
	sched.Register(system.NewEnemySystem(world, combat))
	sched.Register(system.NewWaveSystem(world))
	sched.Register(system.NewAudioSystem(world))
	sched.Register(system.NewStatusSystem(world))

	g := &Game{
		world:     world,
		sched:     sched,
		queue:     queue,
		clock:     opts.Clock,
		statRunID: res.Status.Strings.Get(status.KeyRunID),
	}
	g.renewRunID()
	sched.OnReset(g.renewRunID)

	world.RunSafe(func() {
		g.latest = g.buildSnapshot()
	})
	res.Log.Printf("game: run %s started (seed %d)", g.runID, res.Rand.Seed())
	return g
}

func (g *Game) renewRunID() {
	id := uuid.New()
	g.mu.Lock()
	g.runID = id
	g.mu.Unlock()
	g.statRunID.Store(id.String())
}

// SetInput replaces the held keys and orientation sampled by the next tick
func (g *Game) SetInput(in Input) {
	g.world.Resources.Input.Set(in)
}

func (g *Game) Shoot()        { g.push(event.EventShootRequest) }
func (g *Game) Reload()       { g.push(event.EventReloadRequest) }
func (g *Game) JetpackStart() { g.push(event.EventJetpackStart) }
func (g *Game) JetpackStop()  { g.push(event.EventJetpackStop) }

// Restart reinitializes the run on the next tick, with a new run ID
func (g *Game) Restart() { g.push(event.EventGameReset) }

// Send queues a discrete event by type
func (g *Game) Send(et event.EventType) { g.push(et) }

func (g *Game) push(et event.EventType) {
	g.queue.Push(event.GameEvent{Type: et})
}

// Step runs one tick of length dt and returns the resulting snapshot
func (g *Game) Step(dt time.Duration) Snapshot {
	var snap Snapshot
	g.world.RunSafe(func() {
		g.sched.TickLocked(dt)
		snap = g.buildSnapshot()
	})

	g.mu.Lock()
	g.latest = snap
	g.mu.Unlock()
	return snap
}

// Snapshot returns the output of the most recent tick
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.latest
}

func (g *Game) IsGameOver() bool {
	return g.world.Resources.Game.State.IsOver()
}

func (g *Game) RunID() uuid.UUID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.runID
}

// Status exposes the telemetry registry
func (g *Game) Status() *status.Registry {
	return g.world.Resources.Status
}

// Run ticks at tickRate Hz using measured frame time, handing each snapshot to sink
// Returns when ctx is cancelled
func (g *Game) Run(ctx context.Context, tickRate int, sink func(Snapshot)) error {
	if tickRate <= 0 {
		tickRate = parameter.DefaultTickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	last := g.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := g.clock.Now()
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			snap := g.Step(dt)
			if sink != nil {
				sink(snap)
			}
		}
	}
}

// buildSnapshot copies world state, caller holds the update lock
func (g *Game) buildSnapshot() Snapshot {
	res := g.world.Resources
	comps := g.world.Components
	p := res.Player

	snap := Snapshot{
		RunID:   g.RunID().String(),
		Frame:   g.sched.Frame(),
		Elapsed: g.sched.Elapsed().Seconds(),
		Player: PlayerView{
			Position: p.Position,
			Velocity: p.Velocity,
			Yaw:      p.Yaw,
			Pitch:    p.Pitch,
			Jetpack:  p.JetpackActive,
		},
		State: res.Game.State.Snapshot(),
	}

	for _, e := range comps.Enemy.AllEntity() {
		enemy, _ := comps.Enemy.GetComponent(e)
		kin, _ := comps.Kinetic.GetComponent(e)
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:        uint64(e),
			Position:  kin.Position,
			Velocity:  kin.Velocity,
			Health:    enemy.Health,
			MaxHealth: enemy.MaxHealth,
		})
	}
	for _, e := range comps.Bullet.AllEntity() {
		kin, _ := comps.Kinetic.GetComponent(e)
		snap.Bullets = append(snap.Bullets, BulletView{
			ID:       uint64(e),
			Position: kin.Position,
			Velocity: kin.Velocity,
		})
	}
	for _, cue := range res.Cue.Last() {
		snap.Cues = append(snap.Cues, cue.String())
	}
	return snap
}
