package entity

import (
	"time"

	"github.com/oomph-ac/entsim/game"
)

// Drag decays the velocity of a body by Coefficient per second.
type Drag struct {
	Coefficient float32
}

// Gravity accelerates a body downwards by Rate blocks per second squared. The rate may be changed at any
// time; it is read again on every tick.
type Gravity struct {
	Rate float32
}

// TerminalVelocity caps the length of the velocity of a body, in blocks per second.
type TerminalVelocity struct {
	Speed float32
}

// Collider enables collisions of a body. If Box is non-nil, it is used instead of the hitbox of the body and
// is re-anchored to the position of the body (min corner at the position) before every use.
type Collider struct {
	Box *game.AABB
}

// PhysicsTimer limits the time a body is simulated for. Once Elapsed reaches Budget the body stops.
type PhysicsTimer struct {
	Elapsed time.Duration
	Budget  time.Duration
}

// NewPhysicsTimer returns a timer that expires after the duration passed.
func NewPhysicsTimer(budget time.Duration) *PhysicsTimer {
	return &PhysicsTimer{Budget: budget}
}

// Advance adds dt to the elapsed time and returns true if the timer has expired.
func (t *PhysicsTimer) Advance(dt time.Duration) bool {
	t.Elapsed += dt
	return t.Expired()
}

// Expired returns true if the elapsed time has reached the budget.
func (t *PhysicsTimer) Expired() bool {
	return t.Elapsed >= t.Budget
}

// Remaining returns the time left before the timer expires.
func (t *PhysicsTimer) Remaining() time.Duration {
	return max(0, t.Budget-t.Elapsed)
}
