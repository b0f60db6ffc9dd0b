package utils

import (
	"iter"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/oerror"
)

// ScanRange returns the inclusive range of cells a box may touch while moving by delta. On every axis
// the range covers the box at its start and end positions, padded on both sides by half the box's
// size rounded up, and by one more cell on the side the box is moving towards. The padding keeps
// thin, fast boxes from skipping over a cell between two ticks.
func ScanRange(box game.AABB, delta mgl64.Vec3) (min, max cube.Pos) {
	bbMin, bbMax := box.Min(), box.Max()
	for i := range 3 {
		lo := math.Floor(math.Min(bbMin[i], bbMin[i]+delta[i]))
		hi := math.Floor(math.Max(bbMax[i], bbMax[i]+delta[i]))

		pad := game.CeilHalf(box.Width(i))
		min[i], max[i] = int(lo)-pad, int(hi)+pad
		if delta[i] > 0 {
			max[i]++
		} else if delta[i] < 0 {
			min[i]--
		}
	}
	return
}

// SweptCells iterates over every cell in the ScanRange of the box, X outermost and Z innermost, in
// ascending order. Once more than game.MaxScanCells cells have been produced, every following cell is
// yielded together with an error so the caller may decide whether to keep going.
func SweptCells(box game.AABB, delta mgl64.Vec3) iter.Seq2[error, cube.Pos] {
	return func(yield func(error, cube.Pos) bool) {
		min, max := ScanRange(box, delta)

		var err error
		count := 0
		for x := min[0]; x <= max[0]; x++ {
			for y := min[1]; y <= max[1]; y++ {
				for z := min[2]; z <= max[2]; z++ {
					count++
					if count > game.MaxScanCells && err == nil {
						err = oerror.New("exceeded max scan cells (startPos=%v endPos=%v)", min, max)
					}
					if !yield(err, cube.Pos{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

// BlocksIntersecting returns every cell whose unit cube shares volume with the box passed.
func BlocksIntersecting(box game.AABB) []cube.Pos {
	bbMin, bbMax := box.Min(), box.Max()
	minX, minY, minZ := int(math.Floor(bbMin[0])), int(math.Floor(bbMin[1])), int(math.Floor(bbMin[2]))
	maxX, maxY, maxZ := int(math.Ceil(bbMax[0])), int(math.Ceil(bbMax[1])), int(math.Ceil(bbMax[2]))

	var blocks []cube.Pos
	for x := minX; x < maxX; x++ {
		for y := minY; y < maxY; y++ {
			for z := minZ; z < maxZ; z++ {
				blocks = append(blocks, cube.Pos{x, y, z})
			}
		}
	}
	return blocks
}
