package engine

import "github.com/lixenwraith/city-striker/event"

// System is a tick participant
// Systems receive routed events during dispatch and run Update in priority order
type System interface {
	event.Handler

	// Init resets session state, called at construction and on EventGameReset
	Init()

	// Name identifies the system in logs
	Name() string

	// Priority orders Update calls, lower runs first
	Priority() int

	Update()
}
