package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/city-striker/event"
)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, mock.Now())
	}

	mock.Advance(90 * time.Minute)
	mock.Advance(30 * time.Second)

	expected := start.Add(90*time.Minute + 30*time.Second)
	if !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after Advance, got %v", expected, mock.Now())
	}
}

func TestMockClockDoesNotDriveGameTime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	s := NewScheduler(NewWorld(NewResource(event.NewEventQueue(), 1, nil)), mock)

	mock.Advance(time.Hour)
	s.Tick(16 * time.Millisecond)
	if s.Elapsed() != 16*time.Millisecond {
		t.Errorf("Elapsed = %v, want 16ms", s.Elapsed())
	}
}
