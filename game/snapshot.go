package game

import (
	"github.com/lixenwraith/city-striker/engine"
	"github.com/lixenwraith/city-striker/vmath"
)

// Snapshot is the per-tick output handed to renderers and transports
type Snapshot struct {
	RunID   string                   `json:"runId"`
	Frame   int64                    `json:"frame"`
	Elapsed float64                  `json:"elapsed"` // game seconds since the game was created
	Player  PlayerView               `json:"player"`
	Enemies []EnemyView              `json:"enemies"`
	Bullets []BulletView             `json:"bullets"`
	State   engine.GameStateSnapshot `json:"state"`
	Cues    []string                 `json:"cues,omitempty"`
}

type PlayerView struct {
	Position vmath.Vec3F `json:"position"`
	Velocity vmath.Vec3F `json:"velocity"`
	Yaw      float64     `json:"yaw"`
	Pitch    float64     `json:"pitch"`
	Jetpack  bool        `json:"jetpack"`
}

type EnemyView struct {
	ID        uint64      `json:"id"`
	Position  vmath.Vec3F `json:"position"`
	Velocity  vmath.Vec3F `json:"velocity"`
	Health    int         `json:"health"`
	MaxHealth int         `json:"maxHealth"`
}

type BulletView struct {
	ID       uint64      `json:"id"`
	Position vmath.Vec3F `json:"position"`
	Velocity vmath.Vec3F `json:"velocity"`
}

// LiveEnemies counts enemies with health left
func (s Snapshot) LiveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Health > 0 {
			n++
		}
	}
	return n
}
