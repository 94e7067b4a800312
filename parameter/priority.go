package parameter

// System Execution Priorities (lower runs first)
// Order is the per-tick phase order: kinematics, projectiles, enemies, waves, then sinks
const (
	PriorityAmmo       = 5
	PriorityPlayer     = 10
	PriorityProjectile = 20
	PriorityEnemy      = 30
	PriorityWave       = 40

	// PriorityPresentation starts the sink band, which still runs on the tick that ends the game
	PriorityPresentation = 900
	PriorityAudio        = PriorityPresentation
	PriorityStatus       = PriorityPresentation + 10
)
