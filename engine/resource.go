package engine

import (
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/city-striker/core"
	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/status"
	"github.com/lixenwraith/city-striker/vmath"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Game   *GameStateResource
	Player *PlayerResource
	Input  *InputResource
	Rand   *RandResource
	Cue    *CueResource
	Timer  *TimerQueue
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry
	Log    *log.Logger

	// Bridged from host services, may be nil
	Audio *AudioResource
}

// NewResource creates the resource set for a world
// logger may be nil, in which case log.Default is used
func NewResource(queue *event.EventQueue, seed uint64, logger *log.Logger) *Resource {
	if logger == nil {
		logger = log.Default()
	}
	return &Resource{
		Time:   &TimeResource{},
		Game:   &GameStateResource{State: NewGameState()},
		Player: NewPlayerResource(),
		Input:  &InputResource{},
		Rand:   NewRandResource(seed),
		Cue:    &CueResource{},
		Timer:  NewTimerQueue(),
		Event:  &EventQueueResource{Queue: queue},
		Status: status.NewRegistry(),
		Log:    logger,
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// Updated by the Scheduler at the start of a tick
type TimeResource struct {
	// GameTime is the simulation clock: run epoch plus the sum of tick deltas
	GameTime time.Time

	// RealTime is the wall-clock time of the tick
	RealTime time.Time

	// DeltaTime is the duration of the current tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(gameTime, realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime = gameTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// GameStateResource wraps GameState for systems
type GameStateResource struct {
	State *GameState
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// PlayerResource is the camera/avatar pose, owned by the tick
type PlayerResource struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Yaw      float64
	Pitch    float64

	JetpackActive    bool
	JetpackStartedAt time.Time
}

func NewPlayerResource() *PlayerResource {
	p := &PlayerResource{}
	p.Reset()
	return p
}

// Reset places the avatar at the spawn pose with thrust off
func (p *PlayerResource) Reset() {
	*p = PlayerResource{
		Position: vmath.Vec3F{X: parameter.PlayerSpawnX, Y: parameter.PlayerSpawnY, Z: parameter.PlayerSpawnZ},
	}
}

// ViewDirection returns the unit look vector of the camera
func (p *PlayerResource) ViewDirection() vmath.Vec3F {
	return vmath.ViewDirection(p.Yaw, p.Pitch)
}

// InputState is the held-key map and camera orientation supplied by the host
type InputState struct {
	Forward bool    `json:"forward"`
	Back    bool    `json:"back"`
	Left    bool    `json:"left"`
	Right   bool    `json:"right"`
	Jump    bool    `json:"jump"`
	Yaw     float64 `json:"yaw"`
	Pitch   float64 `json:"pitch"`
}

// InputResource buffers host input between ticks
// Set is safe from any goroutine, Current is stable for the duration of a tick
type InputResource struct {
	mu      sync.Mutex
	pending InputState

	Current InputState
}

// Set replaces the buffered input
func (r *InputResource) Set(in InputState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = in
}

// Sample latches the buffered input into Current
func (r *InputResource) Sample() InputState {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Current = r.pending
	return r.Current
}

// Reset clears both buffered and latched input
func (r *InputResource) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = InputState{}
	r.Current = InputState{}
}

// CueResource collects audio notifications committed during a tick
type CueResource struct {
	pending []core.SoundType
	last    []core.SoundType
}

// Emit records a cue for the current tick
func (r *CueResource) Emit(s core.SoundType) {
	r.pending = append(r.pending, s)
}

// Flush ends the tick: returns its cues and keeps them readable via Last
func (r *CueResource) Flush() []core.SoundType {
	r.last = r.pending
	r.pending = nil
	return r.last
}

// Last returns a copy of the cues of the most recently flushed tick
func (r *CueResource) Last() []core.SoundType {
	if len(r.last) == 0 {
		return nil
	}
	out := make([]core.SoundType, len(r.last))
	copy(out, r.last)
	return out
}

func (r *CueResource) Reset() {
	r.pending = nil
	r.last = nil
}

// === Bridged Resources ===

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}
