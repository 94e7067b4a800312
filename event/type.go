package event

// EventType represents the type of game event
type EventType int

const (
	// === Lifecycle ===

	// EventGameReset reinitializes the run
	// Trigger: Host restart | Consumer: all systems | Payload: nil
	EventGameReset EventType = iota

	// === Weapon ===

	// EventShootRequest fires one round along the camera view direction
	// Trigger: Host edge event | Consumer: ProjectileSystem | Payload: nil
	EventShootRequest

	// EventReloadRequest moves the reload machine from Idle to Reloading
	// Trigger: Host edge event, empty-magazine shot | Consumer: AmmoSystem | Payload: nil
	EventReloadRequest

	// EventReloadComplete transfers reserve rounds into the magazine
	// Trigger: TimerQueue after ReloadDuration | Consumer: AmmoSystem | Payload: nil
	EventReloadComplete

	// === Movement ===

	// EventJetpackStart activates thrust, consuming one charge
	// Trigger: Host edge event | Consumer: PlayerSystem | Payload: nil
	EventJetpackStart

	// EventJetpackStop cuts thrust from the next tick
	// Trigger: Host edge event | Consumer: PlayerSystem | Payload: nil
	EventJetpackStop
)

var eventNames = [...]string{
	EventGameReset:      "game-reset",
	EventShootRequest:   "shoot-request",
	EventReloadRequest:  "reload-request",
	EventReloadComplete: "reload-complete",
	EventJetpackStart:   "jetpack-start",
	EventJetpackStop:    "jetpack-stop",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// ParseEventType resolves a wire name to its event type
func ParseEventType(name string) (EventType, bool) {
	for i, n := range eventNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Frame number when the event was created
}
