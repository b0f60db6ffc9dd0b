package simulation

import (
	"github.com/oomph-ac/entsim/event"
)

// Effects holds everything a single Step produced that affects more than the body it ran on. Effects are
// written by the goroutine simulating the body and applied by the space once all bodies finished.
type Effects struct {
	BlockCollisions  []event.BlockCollisionEvent
	EntityCollisions []event.EntityCollisionEvent
	// Stopped is non-zero if the body must stop being simulated.
	Stopped event.StopReason
	// ScanErr is set if a broad phase scan of the body ran over its budget.
	ScanErr error
}

// Empty returns true if the step had no effects.
func (fx Effects) Empty() bool {
	return len(fx.BlockCollisions) == 0 && len(fx.EntityCollisions) == 0 && fx.Stopped == 0 && fx.ScanErr == nil
}
