package collisions

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/utils"
)

// Candidate is a collision found between a moving box and one shape of a block during a single step.
type Candidate struct {
	game.Collision
	Block cube.Pos
}

// Hit is the nearest collision of a step. Candidates that share the earliest entry time are merged
// into a single Hit, so a box hitting two blocks at once is stopped on both axes.
type Hit struct {
	Time   float64
	Normal [3]int8
	// Blocks holds, for every axis with a non-zero normal, the block that was struck on that axis.
	Blocks [3]cube.Pos
}

// Sweep returns every collision the box passed may have with the blocks of the provider while moving
// by delta. Blocks that are missing or air are skipped. The error returned is non-nil if the scan
// exceeded its cell budget; the candidates are still complete.
func Sweep(box game.AABB, delta mgl64.Vec3, p Provider) (candidates []Candidate, err error) {
	for scanErr, pos := range utils.SweptCells(box, delta) {
		if scanErr != nil && err == nil {
			err = scanErr
		}

		b, ok := p.BlockAt(pos)
		if !ok || b.Air() {
			continue
		}

		offset := pos.Vec3()
		for _, shape := range b.Boxes() {
			c := game.Collide(box, delta, shape.Translate(offset))
			if !c.Hit() {
				continue
			}
			candidates = append(candidates, Candidate{Collision: c, Block: pos})
		}
	}
	return candidates, err
}

// Nearest merges the candidates with the lowest entry time into a single Hit. Normals of tied
// candidates are combined per axis. When several candidates report the same axis, the block with the
// lowest position (compared by X, then Y, then Z) is kept, so the outcome never depends on the order
// of the candidates. The bool returned is false if there are no candidates.
func Nearest(candidates []Candidate) (Hit, bool) {
	if len(candidates) == 0 {
		return Hit{}, false
	}

	earliest := candidates[0].Time
	for _, c := range candidates[1:] {
		if c.Time < earliest {
			earliest = c.Time
		}
	}

	hit := Hit{Time: earliest}
	for _, c := range candidates {
		if c.Time != earliest {
			continue
		}
		for axis, n := range c.Normal {
			if n == 0 {
				continue
			}
			if hit.Normal[axis] == 0 || posLess(c.Block, hit.Blocks[axis]) {
				hit.Normal[axis] = n
				hit.Blocks[axis] = c.Block
			}
		}
	}
	return hit, true
}

// posLess compares two block positions lexicographically.
func posLess(a, b cube.Pos) bool {
	for i := range 3 {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
