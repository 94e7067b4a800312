package component

import "time"

// EnemyComponent holds combat state of a humanoid enemy
// Health <= 0 marks the enemy dead until the wave director removes it
type EnemyComponent struct {
	Health    int
	MaxHealth int

	// LastAttack is zero until the first attack lands
	LastAttack     time.Time
	AttackCooldown time.Duration
}

// Alive reports whether the enemy still takes part in AI and collision
func (e EnemyComponent) Alive() bool {
	return e.Health > 0
}
