package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
)

// Scheduler drives the world one tick at a time
// Tick phases:
//  1. advance the game clock by dt and latch host input
//  2. release due timers, then dispatch queued edge events
//  3. re-dispatch events emitted by handlers, bounded by EventDispatchRounds
//  4. run systems in priority order
//
// After game over only EventGameReset is honored; other events are discarded
type Scheduler struct {
	world  *World
	router *event.Router
	clock  TimeSource

	epoch    time.Time
	gameTime time.Time
	frame    int64

	onReset []func()

	// Cached metric pointers
	statTicks    *atomic.Int64
	statRestarts *atomic.Int64
	statGameOver *atomic.Bool
	statTickMs   *status.AtomicFloat
}

// NewScheduler creates a scheduler whose game clock starts at clock.Now()
func NewScheduler(world *World, clock TimeSource) *Scheduler {
	epoch := clock.Now()
	reg := world.Resources.Status
	return &Scheduler{
		world:        world,
		router:       event.NewRouter(world.Resources.Event.Queue),
		clock:        clock,
		epoch:        epoch,
		gameTime:     epoch,
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statRestarts: reg.Ints.Get(status.KeyRestarts),
		statGameOver: reg.Bools.Get(status.KeyGameOver),
		statTickMs:   reg.Floats.Get(status.KeyTickDuration),
	}
}

// Register adds a system to the world and routes its event types to it
// Registration order sets handler order for events
func (s *Scheduler) Register(sys System) {
	s.world.AddSystem(sys)
	s.router.Register(sys)
}

// OnReset adds a hook run after world state is reinitialized and before systems see EventGameReset
func (s *Scheduler) OnReset(fn func()) {
	s.onReset = append(s.onReset, fn)
}

// Tick executes one simulation step of length dt, negative dt counts as zero
func (s *Scheduler) Tick(dt time.Duration) {
	s.world.RunSafe(func() {
		s.TickLocked(dt)
	})
}

// TickLocked executes one step assuming the caller holds the world update lock
func (s *Scheduler) TickLocked(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	res := s.world.Resources
	started := s.clock.Now()

	s.frame++
	s.gameTime = s.gameTime.Add(dt)
	res.Time.Update(s.gameTime, started, dt, s.frame)

	in := res.Input.Sample()
	res.Player.Yaw = in.Yaw
	res.Player.Pitch = in.Pitch

	pending := res.Timer.FireDue(s.gameTime)
	pending = append(pending, res.Event.Queue.Consume()...)
	for round := 0; len(pending) > 0; round++ {
		if round == parameter.EventDispatchRounds {
			// Leftovers run first next tick
			for _, ev := range pending {
				res.Event.Queue.Push(ev)
			}
			break
		}
		s.dispatch(pending)
		pending = res.Event.Queue.Consume()
	}

	s.world.UpdateLocked()

	s.statTicks.Store(s.frame)
	s.statGameOver.Store(res.Game.State.IsOver())
	s.statTickMs.Set(float64(s.clock.Now().Sub(started).Microseconds()) / 1000)
}

// dispatch routes events one at a time so a reset mid-batch takes effect for the events after it
func (s *Scheduler) dispatch(events []event.GameEvent) {
	state := s.world.Resources.Game.State
	for _, ev := range events {
		if ev.Type == event.EventGameReset {
			s.executeReset()
		} else if state.IsOver() {
			continue
		}
		s.router.Dispatch([]event.GameEvent{ev})
	}
}

// executeReset reinitializes world-owned state; systems reinitialize themselves on the event
func (s *Scheduler) executeReset() {
	res := s.world.Resources

	s.world.Clear()
	res.Game.State.Reset()
	res.Player.Reset()
	res.Input.Reset()
	res.Timer.Clear()
	res.Cue.Reset()

	for _, fn := range s.onReset {
		fn()
	}

	restarts := s.statRestarts.Add(1)
	res.Log.Printf("engine: run reset at frame %d (restart #%d)", s.frame, restarts)
}

// GameTime returns the current simulation clock
func (s *Scheduler) GameTime() time.Time {
	return s.gameTime
}

// Elapsed returns game time since the scheduler was created
func (s *Scheduler) Elapsed() time.Duration {
	return s.gameTime.Sub(s.epoch)
}

// Frame returns the number of ticks executed
func (s *Scheduler) Frame() int64 {
	return s.frame
}
