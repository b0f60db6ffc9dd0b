package entity

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/utils"
)

// StuckAllFaces is a stuck mask that stops a body on any face it hits.
const StuckAllFaces uint8 = 1<<6 - 1

// StuckFaces returns a stuck mask holding the faces passed.
func StuckFaces(faces ...cube.Face) uint8 {
	var mask uint8
	for _, f := range faces {
		mask = utils.SetFlag(mask, uint(f))
	}
	return mask
}

// Config holds the settings a Body is created with. Nil components are left out of the body, which is not
// the same as a component with a zero value: a body with a zero Gravity rate may have it raised later.
type Config struct {
	Position mgl64.Vec3
	Velocity mgl32.Vec3
	// Shape is the hitbox of the body relative to its position.
	Shape game.AABB

	Drag             *Drag
	Gravity          *Gravity
	TerminalVelocity *TerminalVelocity

	BlockCollider  *Collider
	EntityCollider *Collider

	// StuckMask holds a bit for every cube.Face the body gets stuck on.
	StuckMask uint8
	// Collidable is true if other bodies may collide with this one.
	Collidable bool
	// Timer limits the time the body is simulated for.
	Timer *PhysicsTimer
	// HistorySize is the amount of past positions kept for the body. Zero disables the history.
	HistorySize int
}

// New creates a physics-active Body from the config. Components are copied, so a Config may be used to
// create any amount of bodies.
func (conf Config) New(handle uint64) *Body {
	b := &Body{
		handle:     handle,
		velocity:   conf.Velocity,
		shape:      conf.Shape,
		stuckMask:  conf.StuckMask,
		active:     true,
		collidable: conf.Collidable,
	}
	b.SetPosition(conf.Position)

	if conf.Drag != nil {
		d := *conf.Drag
		b.drag = &d
	}
	if conf.Gravity != nil {
		g := *conf.Gravity
		b.gravity = &g
	}
	if conf.TerminalVelocity != nil {
		t := *conf.TerminalVelocity
		b.terminal = &t
	}
	b.blockCollider = cloneCollider(conf.BlockCollider)
	b.entityCollider = cloneCollider(conf.EntityCollider)
	if conf.Timer != nil {
		t := *conf.Timer
		b.timer = &t
	}
	if conf.HistorySize > 0 {
		b.history = NewHistory(conf.HistorySize)
	}
	return b
}

func cloneCollider(c *Collider) *Collider {
	if c == nil {
		return nil
	}
	clone := &Collider{}
	if c.Box != nil {
		box := *c.Box
		clone.Box = &box
	}
	return clone
}
