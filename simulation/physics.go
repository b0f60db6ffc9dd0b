package simulation

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/assert"
	"github.com/oomph-ac/entsim/entity"
	"github.com/oomph-ac/entsim/event"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/utils"
	"github.com/oomph-ac/entsim/utils/collisions"
)

// Collidable is a snapshot of the hitbox of something bodies may collide with, taken at the start of a
// tick.
type Collidable struct {
	Handle uint64
	Box    game.AABB
	// Body is the body the snapshot was taken of, or nil if the collidable is not a body of the space.
	// A body never collides with its own snapshot.
	Body *entity.Body
}

// Step advances a single body by dt. It only changes the body passed; everything else it produces is
// returned as Effects. Bodies that are not active are left untouched. If p is nil, the body passes
// through blocks.
func Step(b *entity.Body, dt time.Duration, p collisions.Provider, others []Collidable) (fx Effects) {
	assert.IsTrue(dt > 0, "step duration must be positive (dt=%v)", dt)
	if !b.Active() {
		return
	}

	if t := b.Timer(); t != nil && t.Advance(dt) {
		fx.Stopped = event.StopExpired
		return
	}

	seconds := float32(dt.Seconds())
	vel := b.Velocity()
	if d := b.Drag(); d != nil {
		vel = game.ApplyDrag(vel, d.Coefficient, seconds)
	}
	if g := b.Gravity(); g != nil {
		vel[1] -= g.Rate * seconds
	}
	if tv := b.TerminalVelocity(); tv != nil {
		vel = game.ClampLength(vel, tv.Speed)
	}
	b.SetVelocity(vel)

	if c := b.BlockCollider(); c != nil && p != nil {
		resolveBlocks(b, c, dt, p, &fx)
	}
	if c := b.EntityCollider(); c != nil {
		collideEntities(b, c, dt, others, &fx)
	}

	b.Move(displacement(b.Velocity(), dt))
	return
}

// resolveBlocks moves the body up to the nearest block it would hit during the step, stopping the
// velocity on every axis it hit, and repeats this a limited amount of times so the body can slide along
// the blocks it touched. If the body hits a face it gets stuck on, it stops entirely.
func resolveBlocks(b *entity.Body, c *entity.Collider, dt time.Duration, p collisions.Provider, fx *Effects) {
	previous := b.Velocity()
	for range game.MaxResolvePasses {
		vel := b.Velocity()
		delta := displacement(vel, dt)
		if delta == (mgl64.Vec3{}) {
			return
		}

		candidates, err := collisions.Sweep(b.ColliderBox(c), delta, p)
		if err != nil && fx.ScanErr == nil {
			fx.ScanErr = err
		}
		hit, ok := collisions.Nearest(candidates)
		if !ok {
			return
		}

		t := hit.Time - game.TimeOfImpactEpsilon
		pos := b.Position()
		for axis, n := range hit.Normal {
			if n == 0 {
				continue
			}
			vel[axis] = 0
			pos[axis] += delta[axis] * t
		}
		b.SetPosition(pos)
		b.SetVelocity(vel)

		for axis, n := range hit.Normal {
			if n == 0 {
				continue
			}
			face := utils.FaceFromNormal(axis, n)
			if !b.StuckOn(face) {
				continue
			}

			b.SetVelocity(mgl32.Vec3{})
			if g := b.Gravity(); g != nil {
				g.Rate = 0
			}
			fx.BlockCollisions = append(fx.BlockCollisions, event.BlockCollisionEvent{
				Entity:           b.Handle(),
				Position:         b.Position(),
				PreviousVelocity: previous,
				Block:            hit.Blocks[axis],
				Face:             face,
			})
			fx.Stopped = event.StopStuck
			return
		}
	}
}

// collideEntities checks whether the body, moving with its resolved velocity, touches any of the others
// during the step.
func collideEntities(b *entity.Body, c *entity.Collider, dt time.Duration, others []Collidable, fx *Effects) {
	box := b.ColliderBox(c)
	delta := displacement(b.Velocity(), dt)
	for _, o := range others {
		if o.Body == b {
			continue
		}
		if !game.Collide(box, delta, o.Box).Hit() {
			continue
		}
		fx.EntityCollisions = append(fx.EntityCollisions, event.EntityCollisionEvent{
			Entity: b.Handle(),
			Other:  o.Handle,
		})
	}
}

// displacement returns the distance travelled with the velocity passed over dt.
func displacement(vel mgl32.Vec3, dt time.Duration) mgl64.Vec3 {
	return game.Vec32To64(vel).Mul(dt.Seconds())
}
