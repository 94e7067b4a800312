package parameter

import "time"

// Wave Scaling
const (
	WaveBaseCount      = 5
	WaveCountGrowth    = 2
	WaveBaseHealth     = 100
	WaveHealthGrowth   = 20
	WaveBaseCooldown   = 2000 * time.Millisecond
	WaveCooldownDecay  = 100 * time.Millisecond
	WaveCooldownFloor  = 1000 * time.Millisecond
	WavePopulationMin  = 5
	WaveSpawnSpread    = 25.0
	WaveSpawnMaxProbes = 16

	// WaveSpawnSafeZone keeps fresh spawns out of attack range of the player
	WaveSpawnSafeZone = EnemyAttackRange
)

// Wave Clear Reward
const (
	WaveRewardHealth  = 20
	WaveRewardReserve = 30
	WaveRewardJetpack = 1
)
