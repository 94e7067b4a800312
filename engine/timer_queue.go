package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/city-striker/event"
)

type scheduledEvent struct {
	at time.Time
	ev event.GameEvent
}

// TimerQueue holds events deferred to a game time
// Due events are released at the start of a tick, ahead of input events
type TimerQueue struct {
	mu      sync.Mutex
	pending []scheduledEvent
}

func NewTimerQueue() *TimerQueue {
	return &TimerQueue{}
}

// Schedule defers ev until game time at
// Timers due at the same instant fire in scheduling order
func (q *TimerQueue) Schedule(at time.Time, ev event.GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item := scheduledEvent{at: at, ev: ev}
	idx := sort.Search(len(q.pending), func(i int) bool {
		return q.pending[i].at.After(at)
	})
	q.pending = append(q.pending, scheduledEvent{})
	copy(q.pending[idx+1:], q.pending[idx:])
	q.pending[idx] = item
}

// FireDue removes and returns events due at or before now, earliest first
func (q *TimerQueue) FireDue(now time.Time) []event.GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for n < len(q.pending) && !q.pending[n].at.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]event.GameEvent, n)
	for i := 0; i < n; i++ {
		due[i] = q.pending[i].ev
	}
	q.pending = append(q.pending[:0], q.pending[n:]...)
	return due
}

// Next returns the earliest due time
func (q *TimerQueue) Next() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return time.Time{}, false
	}
	return q.pending[0].at, true
}

func (q *TimerQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Clear drops every pending timer
func (q *TimerQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = q.pending[:0]
}
