package core

// SoundType identifies a fire-and-forget audio notification
type SoundType int

const (
	SoundShot          SoundType = iota // Bullet spawned
	SoundEnemyHit                       // Bullet hit an enemy
	SoundReload                         // Reload started
	SoundEnemyAttack                    // Enemy attack landed
	SoundPlayerDamage                   // Player health reduced
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundShot:         "shot-fired",
	SoundEnemyHit:     "enemy-hit",
	SoundReload:       "reload-started",
	SoundEnemyAttack:  "enemy-attacked",
	SoundPlayerDamage: "player-damaged",
}

// String returns the wire name of the notification
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
