package parameter

// Terminal Radar
const (
	// RadarRange is the world distance from the player to the radar edge
	RadarRange = 30.0

	// RadarAspect compensates for terminal cells being about twice as tall as wide
	RadarAspect = 2.0

	// RadarRingSamples is the point count of the attack range ring
	RadarRingSamples = 48
)
