package network

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/city-striker/event"
	"github.com/lixenwraith/city-striker/game"
	"github.com/lixenwraith/city-striker/status"
)

var ErrRejectedEvent = errors.New("event not accepted from clients")

// Controller is the game surface driven by the bridge
type Controller interface {
	SetInput(game.Input)
	Send(event.EventType)
	Snapshot() game.Snapshot
	Status() *status.Registry
}

// ClientMessage is an inbound frame from an external renderer
// Input, when present, replaces the held keys and orientation
// Events are edge triggers by name, applied in order
type ClientMessage struct {
	Input  *game.Input `json:"input,omitempty"`
	Events []string    `json:"events,omitempty"`
}

// clientEvents are the edge triggers a client may request
var clientEvents = map[event.EventType]bool{
	event.EventShootRequest:  true,
	event.EventReloadRequest: true,
	event.EventJetpackStart:  true,
	event.EventJetpackStop:   true,
	event.EventGameReset:     true,
}

// Apply validates every event name before forwarding anything to the controller
func (m *ClientMessage) Apply(ctrl Controller) error {
	types := make([]event.EventType, 0, len(m.Events))
	for _, name := range m.Events {
		et, ok := event.ParseEventType(name)
		if !ok || !clientEvents[et] {
			return fmt.Errorf("%w: %q", ErrRejectedEvent, name)
		}
		types = append(types, et)
	}

	if m.Input != nil {
		ctrl.SetInput(*m.Input)
	}
	for _, et := range types {
		ctrl.Send(et)
	}
	return nil
}
