package parameter

import "time"

// Game Loop
const (
	// DefaultTickRate is the simulation tick frequency used by the host loop
	DefaultTickRate = 60

	// MaxFrameDelta caps a single tick delta for the real-time host loop
	MaxFrameDelta = 250 * time.Millisecond

	// EventDispatchRounds bounds re-dispatch of events emitted while handling events
	EventDispatchRounds = 4
)

// Event Queue
const (
	// EventQueueSize is the initial capacity of the event ring buffer, must be a power of two
	EventQueueSize = 1024
)

// Host Input
const (
	// InputHoldWindow keeps a key held after its last repeat, terminals report no key release
	InputHoldWindow = 180 * time.Millisecond

	// InputLookStep is the yaw/pitch change per arrow key press in radians
	InputLookStep = 0.08

	// InputPitchLimit clamps pitch short of straight up or down
	InputPitchLimit = 1.5
)
