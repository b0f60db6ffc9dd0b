package game

const (
	// MaxResolvePasses is the amount of collision resolution passes run for a single entity every tick.
	MaxResolvePasses = 3
	// TimeOfImpactEpsilon is subtracted from the entry time of a collision before the entity is moved
	// up to it, so floating point error does not push it into the collider.
	TimeOfImpactEpsilon = 0.001
	// MaxScanCells is the amount of cells a broad phase scan may visit before it reports an error.
	MaxScanCells = 4096

	// DefaultTickRate is the amount of simulation ticks run per second.
	DefaultTickRate = 20
)
