package vmath

import "math"

// ViewDirection returns the unit look vector for a yaw-then-pitch camera
// Zero yaw and pitch look down -Z, positive pitch looks up
func ViewDirection(yaw, pitch float64) Vec3F {
	sinYaw, cosYaw := math.Sincos(yaw)
	sinPitch, cosPitch := math.Sincos(pitch)
	return Vec3F{
		X: -sinYaw * cosPitch,
		Y: sinPitch,
		Z: -cosYaw * cosPitch,
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
