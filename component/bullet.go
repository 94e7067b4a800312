package component

import "time"

// BulletComponent marks a projectile entity
type BulletComponent struct {
	CreatedAt time.Time
}

// Expired reports whether the bullet reached ttl at game time now
func (b BulletComponent) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(b.CreatedAt) >= ttl
}
