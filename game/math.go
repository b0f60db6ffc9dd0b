package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Float64ApproxEq determines whether two floating point numbers are within epsilon of each other.
func Float64ApproxEq(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// ClampLength returns v scaled down so its length does not exceed max. Vectors that are already
// short enough are returned unchanged.
func ClampLength(v mgl32.Vec3, max float32) mgl32.Vec3 {
	if max <= 0 {
		return mgl32.Vec3{}
	}
	lenSqr := v.LenSqr()
	if lenSqr <= max*max {
		return v
	}
	return v.Mul(max / math32.Sqrt(lenSqr))
}

// ApplyDrag returns v decayed by the fraction coefficient*seconds. The factor never goes below
// zero, so a large step cannot reverse the direction of travel.
func ApplyDrag(v mgl32.Vec3, coefficient, seconds float32) mgl32.Vec3 {
	return v.Mul(math32.Max(0, 1-coefficient*seconds))
}

// CeilHalf returns the half of x rounded up to the next integer.
func CeilHalf(x float64) int {
	return int(math.Ceil(x / 2))
}
