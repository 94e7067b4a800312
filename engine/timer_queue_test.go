package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/city-striker/event"
)

func TestTimerQueueFiresInDueOrder(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	q := NewTimerQueue()

	q.Schedule(base.Add(300*time.Millisecond), event.GameEvent{Frame: 3})
	q.Schedule(base.Add(100*time.Millisecond), event.GameEvent{Frame: 1})
	q.Schedule(base.Add(100*time.Millisecond), event.GameEvent{Frame: 2})

	if next, ok := q.Next(); !ok || !next.Equal(base.Add(100*time.Millisecond)) {
		t.Errorf("Next = %v, %v", next, ok)
	}

	if due := q.FireDue(base.Add(50 * time.Millisecond)); due != nil {
		t.Fatalf("fired early: %v", due)
	}

	due := q.FireDue(base.Add(100 * time.Millisecond))
	if len(due) != 2 || due[0].Frame != 1 || due[1].Frame != 2 {
		t.Fatalf("due = %+v, want frames 1,2", due)
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}

	q.Clear()
	if len(q.FireDue(base.Add(time.Hour))) != 0 {
		t.Error("Clear left timers")
	}
	if _, ok := q.Next(); ok {
		t.Error("Next reported a timer after Clear")
	}
}
