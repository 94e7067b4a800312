package parameter

import "time"

// Projectile
const (
	// BulletSpeed is the distance travelled per tick, bullet velocity is not scaled by frame time
	BulletSpeed = 2.0

	// BulletMuzzleDrop lowers the spawn point below the camera
	BulletMuzzleDrop = 0.2

	// BulletTTL is the maximum bullet age
	BulletTTL = 3 * time.Second

	// BulletDamage is the health removed from an enemy per hit
	BulletDamage = 25

	// BulletHitScore is awarded on every hit, lethal or not
	BulletHitScore = 25

	// BulletHitRadius is the distance below which a bullet registers a hit
	BulletHitRadius = 1.0

	// EnemyTorsoHeight raises the hit-test point above the enemy origin
	EnemyTorsoHeight = 1.0
)

// Enemy Attack
const (
	// EnemyAttackRange is the planar distance within which enemies attack
	EnemyAttackRange = 8.0

	// EnemyAttackDamage is the health removed from the player per attack
	EnemyAttackDamage = 10
)
