package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/city-striker/parameter"
	"github.com/lixenwraith/city-striker/vmath"
)

// ReloadState is the ammo state machine state
type ReloadState uint8

const (
	ReloadIdle ReloadState = iota
	ReloadReloading
)

func (r ReloadState) String() string {
	if r == ReloadReloading {
		return "reloading"
	}
	return "idle"
}

// GameStateSnapshot is a value copy of GameState for renderers and transports
type GameStateSnapshot struct {
	Score            int  `json:"score"`
	Health           int  `json:"health"`
	EnemiesRemaining int  `json:"enemiesRemaining"`
	Ammo             int  `json:"ammo"`
	MaxAmmo          int  `json:"maxAmmo"`
	ReserveAmmo      int  `json:"reserveAmmo"`
	JetpackCharges   int  `json:"jetpackCharges"`
	Wave             int  `json:"wave"`
	EnemiesKilled    int  `json:"enemiesKilled"`
	Reloading        bool `json:"reloading"`
	GameOver         bool `json:"gameOver"`
}

// GameState is the single authoritative record of a run
// Every mutator clamps at the write site; health reaching zero latches game over
type GameState struct {
	mu sync.RWMutex

	score            int
	health           int
	enemiesRemaining int
	ammo             int
	maxAmmo          int
	reserveAmmo      int
	jetpackCharges   int
	wave             int
	enemiesKilled    int

	reload          ReloadState
	reloadStartedAt time.Time

	over bool
}

// NewGameState creates a state initialized for wave 1
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset()
	return gs
}

// Reset restores the opening values of a run
func (gs *GameState) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.score = 0
	gs.health = parameter.PlayerInitialHealth
	gs.enemiesRemaining = parameter.EnemyInitialCount
	gs.maxAmmo = parameter.AmmoMagazineSize
	gs.ammo = parameter.AmmoMagazineSize
	gs.reserveAmmo = parameter.AmmoInitialReserve
	gs.jetpackCharges = parameter.JetpackInitialCharges
	gs.wave = 1
	gs.enemiesKilled = 0
	gs.reload = ReloadIdle
	gs.reloadStartedAt = time.Time{}
	gs.over = false
}

// Snapshot returns a consistent copy of all fields
func (gs *GameState) Snapshot() GameStateSnapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return GameStateSnapshot{
		Score:            gs.score,
		Health:           gs.health,
		EnemiesRemaining: gs.enemiesRemaining,
		Ammo:             gs.ammo,
		MaxAmmo:          gs.maxAmmo,
		ReserveAmmo:      gs.reserveAmmo,
		JetpackCharges:   gs.jetpackCharges,
		Wave:             gs.wave,
		EnemiesKilled:    gs.enemiesKilled,
		Reloading:        gs.reload == ReloadReloading,
		GameOver:         gs.over,
	}
}

// Restore overwrites the record from a snapshot, clamping every field
// The reload machine returns to Idle
func (gs *GameState) Restore(s GameStateSnapshot) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.score = max(0, s.Score)
	gs.health = vmath.ClampInt(s.Health, 0, parameter.PlayerMaxHealth)
	gs.enemiesRemaining = max(0, s.EnemiesRemaining)
	gs.maxAmmo = max(1, s.MaxAmmo)
	gs.ammo = vmath.ClampInt(s.Ammo, 0, gs.maxAmmo)
	gs.reserveAmmo = max(0, s.ReserveAmmo)
	gs.jetpackCharges = max(0, s.JetpackCharges)
	gs.wave = max(1, s.Wave)
	gs.enemiesKilled = max(0, s.EnemiesKilled)
	gs.reload = ReloadIdle
	gs.reloadStartedAt = time.Time{}
	gs.over = gs.health <= 0
}

// ===== GETTERS =====

func (gs *GameState) GetScore() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.score
}

func (gs *GameState) GetHealth() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.health
}

func (gs *GameState) GetEnemiesRemaining() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.enemiesRemaining
}

func (gs *GameState) GetAmmo() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.ammo
}

func (gs *GameState) GetMaxAmmo() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.maxAmmo
}

func (gs *GameState) GetReserveAmmo() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.reserveAmmo
}

func (gs *GameState) GetJetpackCharges() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.jetpackCharges
}

func (gs *GameState) GetWave() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.wave
}

func (gs *GameState) GetEnemiesKilled() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.enemiesKilled
}

func (gs *GameState) GetReloadState() ReloadState {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.reload
}

// GetReloadStartedAt returns the game time of the pending reload, zero when Idle
func (gs *GameState) GetReloadStartedAt() time.Time {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.reloadStartedAt
}

// IsOver reports the terminal game-over latch
func (gs *GameState) IsOver() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.over
}

// ===== HEALTH =====

// Damage removes health, floored at zero, and latches game over on zero
// Returns the resulting health
func (gs *GameState) Damage(amount int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.over || amount <= 0 {
		return gs.health
	}
	gs.health = max(0, gs.health-amount)
	if gs.health <= 0 {
		gs.over = true
	}
	return gs.health
}

// Heal adds health capped at PlayerMaxHealth
func (gs *GameState) Heal(amount int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.over || amount <= 0 {
		return gs.health
	}
	gs.health = min(parameter.PlayerMaxHealth, gs.health+amount)
	return gs.health
}

// ===== AMMO =====

// SpendRound removes one round from the magazine
// Refused while reloading or when empty
func (gs *GameState) SpendRound() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.over || gs.reload == ReloadReloading || gs.ammo <= 0 {
		return false
	}
	gs.ammo--
	return true
}

// BeginReload moves Idle to Reloading
// Refused when already reloading, reserve is empty or magazine is full
func (gs *GameState) BeginReload(now time.Time) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.over || gs.reload == ReloadReloading || gs.reserveAmmo <= 0 || gs.ammo >= gs.maxAmmo {
		return false
	}
	gs.reload = ReloadReloading
	gs.reloadStartedAt = now
	return true
}

// CompleteReload transfers min(deficit, reserve) into the magazine and returns to Idle
// Returns the number of rounds transferred
func (gs *GameState) CompleteReload() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.reload != ReloadReloading {
		return 0
	}
	moved := min(gs.maxAmmo-gs.ammo, gs.reserveAmmo)
	if moved < 0 {
		moved = 0
	}
	gs.ammo += moved
	gs.reserveAmmo -= moved
	gs.reload = ReloadIdle
	gs.reloadStartedAt = time.Time{}
	return moved
}

// RefillMagazine sets ammo to capacity without touching reserve
func (gs *GameState) RefillMagazine() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.ammo = gs.maxAmmo
}

func (gs *GameState) AddReserve(amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.reserveAmmo = max(0, gs.reserveAmmo+amount)
}

// ===== JETPACK =====

// UseJetpackCharge consumes one charge, refused at zero
func (gs *GameState) UseJetpackCharge() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if gs.over || gs.jetpackCharges <= 0 {
		return false
	}
	gs.jetpackCharges--
	return true
}

// GrantJetpackCharges adds charges capped at JetpackMaxCharges
func (gs *GameState) GrantJetpackCharges(amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.jetpackCharges = vmath.ClampInt(gs.jetpackCharges+amount, 0, parameter.JetpackMaxCharges)
}

// ===== SCORE / WAVE =====

func (gs *GameState) AddScore(amount int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.score += amount
}

func (gs *GameState) RecordKill() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.enemiesKilled++
}

// SetEnemiesRemaining records the wave target, set at wave start
func (gs *GameState) SetEnemiesRemaining(n int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.enemiesRemaining = max(0, n)
}

// RecordLosses lowers the wave target by the number of enemies removed as dead
// The target never falls below live, so it always covers every enemy on the field
func (gs *GameState) RecordLosses(removed, live int) int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.enemiesRemaining = max(gs.enemiesRemaining-removed, live, 0)
	return gs.enemiesRemaining
}

// AdvanceWave increments the wave counter and returns the new wave
func (gs *GameState) AdvanceWave() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.wave++
	return gs.wave
}
