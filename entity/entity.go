package entity

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/utils"
)

// Body holds the physics state of a single dynamic entity. A Body is not safe for concurrent use: during a
// tick it is only ever written by the goroutine simulating it.
type Body struct {
	handle uint64

	// position is the position of the body in the world.
	position mgl64.Vec3
	// velocity is the velocity of the body in blocks per second.
	velocity mgl32.Vec3
	// shape is the hitbox of the body relative to its position.
	shape game.AABB
	// hitbox is shape translated to position.
	hitbox game.AABB

	drag     *Drag
	gravity  *Gravity
	terminal *TerminalVelocity

	blockCollider  *Collider
	entityCollider *Collider

	// stuckMask holds a bit for every face the body gets stuck on when it hits a block.
	stuckMask uint8
	// active is false once the body has stopped being simulated.
	active bool
	// collidable is true if other bodies may collide with this one.
	collidable bool

	timer   *PhysicsTimer
	history *History
}

// Handle returns the unique handle of the body within the space it was spawned into.
func (b *Body) Handle() uint64 {
	return b.handle
}

// Position returns the current position of the body.
func (b *Body) Position() mgl64.Vec3 {
	return b.position
}

// SetPosition moves the body to the position passed.
func (b *Body) SetPosition(pos mgl64.Vec3) {
	b.position = pos
	b.hitbox = b.shape.Translate(pos)
}

// Move translates the body by delta.
func (b *Body) Move(delta mgl64.Vec3) {
	b.SetPosition(b.position.Add(delta))
}

// Velocity returns the current velocity of the body.
func (b *Body) Velocity() mgl32.Vec3 {
	return b.velocity
}

// SetVelocity sets the velocity of the body.
func (b *Body) SetVelocity(vel mgl32.Vec3) {
	b.velocity = vel
}

// Shape returns the hitbox of the body relative to its position.
func (b *Body) Shape() game.AABB {
	return b.shape
}

// Hitbox returns the hitbox of the body in world space.
func (b *Body) Hitbox() game.AABB {
	return b.hitbox
}

// Drag returns the drag component of the body, or nil if it has none.
func (b *Body) Drag() *Drag {
	return b.drag
}

// Gravity returns the gravity component of the body, or nil if it has none.
func (b *Body) Gravity() *Gravity {
	return b.gravity
}

// TerminalVelocity returns the terminal velocity of the body, or nil if it has none.
func (b *Body) TerminalVelocity() *TerminalVelocity {
	return b.terminal
}

// BlockCollider returns the collider used against blocks, or nil if the body passes through blocks.
func (b *Body) BlockCollider() *Collider {
	return b.blockCollider
}

// EntityCollider returns the collider used against other bodies, or nil if the body does not check for
// collisions with them.
func (b *Body) EntityCollider() *Collider {
	return b.entityCollider
}

// ColliderBox returns the box that should be used for the collider passed at the current position of the
// body: the override box of the collider re-anchored so its min corner is at the position, or the hitbox
// if there is none.
func (b *Body) ColliderBox(c *Collider) game.AABB {
	if c == nil || c.Box == nil {
		return b.hitbox
	}
	anchored := c.Box.TranslateTo(b.position)
	*c.Box = anchored
	return anchored
}

// StuckMask returns the mask of faces the body gets stuck on.
func (b *Body) StuckMask() uint8 {
	return b.stuckMask
}

// StuckOn returns true if hitting the face passed stops the body.
func (b *Body) StuckOn(face cube.Face) bool {
	return utils.HasFlag(b.stuckMask, uint(face))
}

// Active returns true if the body is still simulated.
func (b *Body) Active() bool {
	return b.active
}

// SetActive sets whether the body is simulated.
func (b *Body) SetActive(active bool) {
	b.active = active
}

// Collidable returns true if other bodies may collide with this one.
func (b *Body) Collidable() bool {
	return b.collidable
}

// SetCollidable sets whether other bodies may collide with this one.
func (b *Body) SetCollidable(collidable bool) {
	b.collidable = collidable
}

// Timer returns the physics timer of the body, or nil if it is simulated until stopped otherwise.
func (b *Body) Timer() *PhysicsTimer {
	return b.timer
}

// History returns the position history of the body, or nil if it does not keep one.
func (b *Body) History() *History {
	return b.history
}

// Record adds the current position of the body to its history, if it keeps one.
func (b *Body) Record(tick int64) {
	if b.history != nil {
		b.history.Add(HistoricalPosition{Position: b.position, Tick: tick})
	}
}
