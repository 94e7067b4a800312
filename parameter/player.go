package parameter

import "time"

// Ground Movement
const (
	// PlayerMoveSpeed is the planar ground speed in units per second
	PlayerMoveSpeed = 27.8 / 3

	// PlayerGravity is the downward acceleration applied to vertical velocity every tick
	PlayerGravity = 25.0

	// PlayerJumpImpulse replaces vertical velocity when a jump starts
	PlayerJumpImpulse = 10.0

	// PlayerJumpThreshold is the highest camera height from which a jump may start
	PlayerJumpThreshold = 2.1

	// PlayerGroundHeight is the camera floor, the avatar never drops below it
	PlayerGroundHeight = 2.0
)

// Spawn Pose
const (
	PlayerSpawnX = 0.0
	PlayerSpawnY = PlayerGroundHeight
	PlayerSpawnZ = 5.0
)

// Jetpack
const (
	// JetpackThrust is the upward acceleration while the jetpack burns
	JetpackThrust = 15.0

	// JetpackDuration is the burn time granted by one charge
	JetpackDuration = 2 * time.Second

	// JetpackInitialCharges is the charge count at the start of a run
	JetpackInitialCharges = 3

	// JetpackMaxCharges caps charges granted by wave rewards
	JetpackMaxCharges = 5
)

// Health
const (
	PlayerMaxHealth     = 100
	PlayerInitialHealth = PlayerMaxHealth
)
