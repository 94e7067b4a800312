package component

import (
	"github.com/lixenwraith/city-striker/vmath"
)

// KineticComponent holds world-space position and velocity
// Enemy velocity is units per second, bullet velocity is a per-tick displacement
type KineticComponent struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
}
