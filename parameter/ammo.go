package parameter

import "time"

// Magazine and Reserve
const (
	// AmmoMagazineSize is the magazine capacity
	AmmoMagazineSize = 30

	// AmmoInitialReserve is the reserve ammo at the start of a run
	AmmoInitialReserve = 120

	// ReloadDuration is the time between reload start and magazine refill
	ReloadDuration = 1500 * time.Millisecond
)
