package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/city-striker/parameter"
)

// TestGameStateInitialization verifies the opening record of a run
func TestGameStateInitialization(t *testing.T) {
	gs := NewGameState()
	s := gs.Snapshot()

	if s.Health != 100 || s.Ammo != 30 || s.MaxAmmo != 30 || s.ReserveAmmo != 120 {
		t.Errorf("unexpected opening ammo/health: %+v", s)
	}
	if s.JetpackCharges != 3 || s.Wave != 1 || s.EnemiesRemaining != 5 {
		t.Errorf("unexpected opening wave state: %+v", s)
	}
	if s.Score != 0 || s.EnemiesKilled != 0 || s.Reloading || s.GameOver {
		t.Errorf("unexpected opening counters: %+v", s)
	}
}

func TestGameStateHealthBounds(t *testing.T) {
	gs := NewGameState()

	if h := gs.Heal(50); h != 100 {
		t.Errorf("heal above max = %d, want 100", h)
	}
	if h := gs.Damage(35); h != 65 {
		t.Errorf("damage = %d, want 65", h)
	}
	if h := gs.Damage(1000); h != 0 {
		t.Errorf("overkill = %d, want 0", h)
	}
	if !gs.IsOver() {
		t.Fatal("zero health must latch game over")
	}

	// Terminal: no further mutation
	if h := gs.Heal(20); h != 0 {
		t.Errorf("heal after game over = %d, want 0", h)
	}
	if gs.SpendRound() {
		t.Error("SpendRound allowed after game over")
	}
}

func TestGameStateReloadTransfer(t *testing.T) {
	tests := []struct {
		name        string
		ammo        int
		reserve     int
		wantStart   bool
		wantAmmo    int
		wantReserve int
	}{
		{"partial magazine", 4, 120, true, 30, 94},
		{"reserve short", 10, 5, true, 15, 0},
		{"full magazine", 30, 120, false, 30, 120},
		{"empty reserve", 3, 0, false, 3, 0},
	}

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			s := gs.Snapshot()
			s.Ammo, s.ReserveAmmo = tt.ammo, tt.reserve
			gs.Restore(s)

			started := gs.BeginReload(now)
			if started != tt.wantStart {
				t.Fatalf("BeginReload = %v, want %v", started, tt.wantStart)
			}
			if started {
				if gs.BeginReload(now) {
					t.Error("second BeginReload accepted while reloading")
				}
				if gs.SpendRound() {
					t.Error("SpendRound accepted while reloading")
				}
				if !gs.GetReloadStartedAt().Equal(now) {
					t.Error("reload start time not recorded")
				}
			}
			moved := gs.CompleteReload()

			before := tt.ammo
			if gs.GetAmmo() != tt.wantAmmo || gs.GetReserveAmmo() != tt.wantReserve {
				t.Errorf("after reload ammo=%d reserve=%d, want %d/%d",
					gs.GetAmmo(), gs.GetReserveAmmo(), tt.wantAmmo, tt.wantReserve)
			}
			if moved != gs.GetAmmo()-before {
				t.Errorf("moved = %d, want %d", moved, gs.GetAmmo()-before)
			}
			if gs.GetReloadState() != ReloadIdle {
				t.Error("reload machine not back to Idle")
			}
		})
	}
}

func TestGameStateJetpackCharges(t *testing.T) {
	gs := NewGameState()
	for i := 0; i < parameter.JetpackInitialCharges; i++ {
		if !gs.UseJetpackCharge() {
			t.Fatalf("charge %d refused", i)
		}
	}
	if gs.UseJetpackCharge() {
		t.Error("charge granted at zero")
	}

	gs.GrantJetpackCharges(10)
	if gs.GetJetpackCharges() != parameter.JetpackMaxCharges {
		t.Errorf("charges = %d, want cap %d", gs.GetJetpackCharges(), parameter.JetpackMaxCharges)
	}
}

func TestGameStateRestoreClamps(t *testing.T) {
	gs := NewGameState()
	gs.Restore(GameStateSnapshot{Health: 250, Ammo: 99, MaxAmmo: 30, ReserveAmmo: -4, Wave: 0})

	s := gs.Snapshot()
	if s.Health != 100 || s.Ammo != 30 || s.ReserveAmmo != 0 || s.Wave != 1 {
		t.Errorf("Restore did not clamp: %+v", s)
	}
	if s.GameOver {
		t.Error("positive health restored as game over")
	}

	gs.Restore(GameStateSnapshot{Health: 0, MaxAmmo: 30})
	if !gs.IsOver() {
		t.Error("zero health restored without game over")
	}

	gs.Reset()
	if gs.IsOver() || gs.GetHealth() != 100 {
		t.Error("Reset did not clear game over")
	}
}

func TestGameStateRecordLosses(t *testing.T) {
	gs := NewGameState()
	gs.SetEnemiesRemaining(7)

	if got := gs.RecordLosses(2, 5); got != 5 {
		t.Errorf("target after two losses = %d, want 5", got)
	}
	// Never below the live count
	if got := gs.RecordLosses(3, 4); got != 4 {
		t.Errorf("target clamped to live = %d, want 4", got)
	}
	if got := gs.RecordLosses(9, 0); got != 0 {
		t.Errorf("target after clear = %d, want 0", got)
	}
}
