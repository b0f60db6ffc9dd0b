package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Collision is the result of sweeping a moving box against a static one.
type Collision struct {
	// Time is the fraction of the step, in [0, 1], at which the boxes first touch. It is 1 if the
	// boxes do not collide.
	Time float64
	// Normal holds, per axis, the direction of the face that was struck: +1 or -1 for the axes that
	// produced the collision and 0 for the others. The sign is opposite to the direction of travel.
	Normal [3]int8
}

// NoCollision is returned by Collide when the boxes do not touch during the step.
var NoCollision = Collision{Time: 1}

// Hit returns true if at least one axis produced the collision.
func (c Collision) Hit() bool {
	return c.Normal != [3]int8{}
}

// Collide sweeps the moving box by delta, the displacement over one step, against the static box and
// returns the earliest time of impact. Axes without displacement never divide: if the boxes do not
// overlap on such an axis there can be no collision at all, otherwise the axis imposes no
// constraint. Boxes that already overlap on all three axes do not collide.
func Collide(moving AABB, delta mgl64.Vec3, static AABB) Collision {
	var entry, exit [3]float64
	for i := range 3 {
		d := delta[i]
		if d == 0 {
			if !moving.Overlaps1D(static, i) {
				return NoCollision
			}
			entry[i], exit[i] = math.Inf(-1), math.Inf(1)
			continue
		}

		if d > 0 {
			entry[i] = (static.min[i] - moving.max[i]) / d
			exit[i] = (static.max[i] - moving.min[i]) / d
		} else {
			entry[i] = (static.max[i] - moving.min[i]) / d
			exit[i] = (static.min[i] - moving.max[i]) / d
		}
	}

	if entry[0] < 0 && entry[1] < 0 && entry[2] < 0 {
		return NoCollision
	}
	if entry[0] > 1 || entry[1] > 1 || entry[2] > 1 {
		return NoCollision
	}

	entryTime := math.Max(entry[0], math.Max(entry[1], entry[2]))
	exitTime := math.Min(exit[0], math.Min(exit[1], exit[2]))
	if entryTime > exitTime {
		return NoCollision
	}

	c := Collision{Time: entryTime}
	for i := range 3 {
		if entry[i] != entryTime {
			continue
		}
		if delta[i] > 0 {
			c.Normal[i] = -1
		} else {
			c.Normal[i] = 1
		}
	}
	return c
}
