package utils

import (
	"github.com/df-mc/dragonfly/server/block/cube"
)

// FaceFromNormal returns the block face that was struck, given the axis of a collision (0 = X, 1 = Y,
// 2 = Z) and the sign of its normal. A positive normal means the entity hit the face pointing in the
// positive direction of the axis, e.g. falling onto a block strikes cube.FaceUp.
func FaceFromNormal(axis int, sign int8) cube.Face {
	switch axis {
	case 0:
		if sign > 0 {
			return cube.FaceEast
		}
		return cube.FaceWest
	case 1:
		if sign > 0 {
			return cube.FaceUp
		}
		return cube.FaceDown
	default:
		if sign > 0 {
			return cube.FaceSouth
		}
		return cube.FaceNorth
	}
}

// FaceAxis returns the axis index (0 = X, 1 = Y, 2 = Z) the face is perpendicular to, and the sign of
// the face's normal on that axis.
func FaceAxis(f cube.Face) (axis int, sign int8) {
	switch f {
	case cube.FaceDown:
		return 1, -1
	case cube.FaceUp:
		return 1, 1
	case cube.FaceNorth:
		return 2, -1
	case cube.FaceSouth:
		return 2, 1
	case cube.FaceWest:
		return 0, -1
	default:
		return 0, 1
	}
}
