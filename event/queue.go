package event

import (
	"sync"

	"github.com/lixenwraith/city-striker/parameter"
)

// EventQueue is a FIFO ring buffer for game events
// Thread-Safety:
//   - Push: any goroutine
//   - Consume: single consumer (tick loop)
//
// Overflow: the ring doubles, edge events are never dropped
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
	head   int
	count  int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, parameter.EventQueueSize),
	}
}

// Push appends an event, growing the ring when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == len(eq.events) {
		eq.grow()
	}
	idx := (eq.head + eq.count) & (len(eq.events) - 1)
	eq.events[idx] = event
	eq.count++
}

// grow doubles capacity, keeping power-of-two size for mask indexing
func (eq *EventQueue) grow() {
	next := make([]GameEvent, len(eq.events)*2)
	mask := len(eq.events) - 1
	for i := 0; i < eq.count; i++ {
		next[i] = eq.events[(eq.head+i)&mask]
	}
	eq.events = next
	eq.head = 0
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}

	mask := len(eq.events) - 1
	result := make([]GameEvent, eq.count)
	for i := 0; i < eq.count; i++ {
		idx := (eq.head + i) & mask
		result[i] = eq.events[idx]
		eq.events[idx] = GameEvent{}
	}
	eq.head = 0
	eq.count = 0
	return result
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Clear drops all pending events
func (eq *EventQueue) Clear() {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	for i := range eq.events {
		eq.events[i] = GameEvent{}
	}
	eq.head = 0
	eq.count = 0
}
