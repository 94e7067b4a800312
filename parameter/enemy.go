package parameter

import "time"

// Enemy Movement
const (
	// EnemySpeed is the pursuit speed in units per second
	EnemySpeed = 3.0

	// EnemyRetreatFactor scales speed while backing away from the player
	EnemyRetreatFactor = 0.5

	// EnemyFarThreshold is the distance beyond which enemies pursue
	EnemyFarThreshold = 5.0

	// EnemyNearThreshold is the distance below which enemies retreat
	EnemyNearThreshold = 3.0
)

// Initial Population
const (
	EnemyInitialCount    = 5
	EnemyInitialHealth   = 100
	EnemyInitialCooldown = 2000 * time.Millisecond

	// EnemyInitialSpread is the half extent of the square used for the opening placement
	EnemyInitialSpread = 20.0
)
