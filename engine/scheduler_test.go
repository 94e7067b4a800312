package engine

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/lixenwraith/city-striker/component"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestScheduler() (*World, *Scheduler) {
	res := NewResource(event.NewEventQueue(), 1, log.New(io.Discard, "", 0))
	w := NewWorld(res)
	return w, NewScheduler(w, NewMockTimeProvider(testEpoch))
}

// probeSystem records calls and optionally chains events
type probeSystem struct {
	name     string
	priority int
	types    []event.EventType
	onEvent  func(ev event.GameEvent)
	onUpdate func()

	inits   int
	updates int
	events  []event.EventType
}

func (p *probeSystem) Init()                          { p.inits++ }
func (p *probeSystem) Name() string                   { return p.name }
func (p *probeSystem) Priority() int                  { return p.priority }
func (p *probeSystem) EventTypes() []event.EventType { return p.types }
func (p *probeSystem) HandleEvent(ev event.GameEvent) {
	p.events = append(p.events, ev.Type)
	if ev.Type == event.EventGameReset {
		p.Init()
	}
	if p.onEvent != nil {
		p.onEvent(ev)
	}
}
func (p *probeSystem) Update() {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

func TestSchedulerRunsSystemsInPriorityOrder(t *testing.T) {
	w, s := newTestScheduler()
	var order []string
	for _, p := range []*probeSystem{
		{name: "wave", priority: parameter.PriorityWave},
		{name: "player", priority: parameter.PriorityPlayer},
		{name: "audio", priority: parameter.PriorityAudio},
		{name: "enemy", priority: parameter.PriorityEnemy},
	} {
		p := p
		p.onUpdate = func() { order = append(order, p.name) }
		s.Register(p)
	}
	_ = w

	s.Tick(16 * time.Millisecond)

	want := []string{"player", "enemy", "wave", "audio"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSchedulerGameClock(t *testing.T) {
	w, s := newTestScheduler()
	s.Tick(100 * time.Millisecond)
	s.Tick(-time.Second)
	s.Tick(50 * time.Millisecond)

	if s.Elapsed() != 150*time.Millisecond {
		t.Errorf("elapsed = %v, want 150ms", s.Elapsed())
	}
	if !w.Resources.Time.GameTime.Equal(testEpoch.Add(150 * time.Millisecond)) {
		t.Errorf("GameTime = %v", w.Resources.Time.GameTime)
	}
	if w.Resources.Time.DeltaTime != 50*time.Millisecond || s.Frame() != 3 {
		t.Errorf("delta=%v frame=%d", w.Resources.Time.DeltaTime, s.Frame())
	}
}

func TestSchedulerChainedEventsDispatchSameTick(t *testing.T) {
	w, s := newTestScheduler()
	reloads := 0
	p := &probeSystem{
		name:  "weapon",
		types: []event.EventType{event.EventShootRequest, event.EventReloadRequest},
		onEvent: func(ev event.GameEvent) {
			switch ev.Type {
			case event.EventShootRequest:
				w.PushEvent(event.EventReloadRequest, nil)
			case event.EventReloadRequest:
				reloads++
			}
		},
	}
	s.Register(p)

	w.Resources.Event.Queue.Push(event.GameEvent{Type: event.EventShootRequest})
	s.Tick(time.Millisecond)
	if reloads != 1 {
		t.Errorf("chained reload dispatched %d times in tick, want 1", reloads)
	}
}

func TestSchedulerTimersFireOnGameTime(t *testing.T) {
	w, s := newTestScheduler()
	p := &probeSystem{name: "ammo", types: []event.EventType{event.EventReloadComplete}}
	s.Register(p)

	w.Resources.Timer.Schedule(testEpoch.Add(parameter.ReloadDuration), event.GameEvent{Type: event.EventReloadComplete})

	for i := 0; i < 14; i++ {
		s.Tick(100 * time.Millisecond)
	}
	if len(p.events) != 0 {
		t.Fatal("timer fired before due")
	}
	s.Tick(100 * time.Millisecond)
	if len(p.events) != 1 {
		t.Fatalf("timer fired %d times at 1.5s, want 1", len(p.events))
	}
}

func TestSchedulerGameOverHaltsSimulation(t *testing.T) {
	w, s := newTestScheduler()
	sim := &probeSystem{name: "enemy", priority: parameter.PriorityEnemy, types: []event.EventType{event.EventShootRequest}}
	sink := &probeSystem{name: "audio", priority: parameter.PriorityAudio}
	s.Register(sim)
	s.Register(sink)

	w.Resources.Game.State.Damage(parameter.PlayerMaxHealth)
	w.Resources.Event.Queue.Push(event.GameEvent{Type: event.EventShootRequest})
	s.Tick(time.Millisecond)

	if sim.updates != 0 || len(sim.events) != 0 {
		t.Errorf("simulation ran after game over: updates=%d events=%v", sim.updates, sim.events)
	}
	if sink.updates != 1 {
		t.Errorf("presentation band updates = %d, want 1", sink.updates)
	}
}

func TestSchedulerResetRestoresRun(t *testing.T) {
	w, s := newTestScheduler()
	sim := &probeSystem{name: "wave", priority: parameter.PriorityWave, types: []event.EventType{event.EventGameReset}}
	s.Register(sim)

	hooked := 0
	s.OnReset(func() { hooked++ })

	e := w.CreateEntity()
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{Health: 10})
	w.Resources.Player.Position.X = 40
	w.Resources.Timer.Schedule(testEpoch.Add(time.Hour), event.GameEvent{Type: event.EventReloadComplete})
	w.Resources.Game.State.Damage(parameter.PlayerMaxHealth)

	w.Resources.Event.Queue.Push(event.GameEvent{Type: event.EventGameReset})
	s.Tick(time.Millisecond)

	if w.Resources.Game.State.IsOver() || w.Resources.Game.State.GetHealth() != parameter.PlayerMaxHealth {
		t.Error("game state not reset")
	}
	if w.Components.Enemy.CountEntity() != 0 || w.Resources.Timer.Len() != 0 {
		t.Error("entities or timers survived reset")
	}
	if w.Resources.Player.Position.X != parameter.PlayerSpawnX {
		t.Error("player pose not reset")
	}
	if hooked != 1 || sim.inits != 1 || sim.updates != 1 {
		t.Errorf("hook=%d inits=%d updates=%d, want 1/1/1", hooked, sim.inits, sim.updates)
	}
	if w.CreateEntity() <= e {
		t.Error("entity ids reused after reset")
	}
}
