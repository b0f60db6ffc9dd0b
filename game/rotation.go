package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// sinTable holds the sine of 65536 angles evenly spread over a full turn.
var sinTable [65536]float32

func init() {
	for i := range sinTable {
		sinTable[i] = math32.Sin(float32(i) * math32.Pi * 2 / 65536)
	}
}

// TableSin returns the sine of the angle passed in radians, looked up in a table of 65536 values so that
// it returns the same result on every platform.
func TableSin(val float32) float32 {
	return sinTable[uint16(int64(val*10430.378))]
}

// TableCos returns the cosine of the angle passed in radians. See TableSin.
func TableCos(val float32) float32 {
	return sinTable[uint16(int64(val*10430.378+16384.0))]
}

// DirectionVector returns the unit vector pointing in the direction of the yaw and pitch passed, in
// degrees. A yaw of 0 points towards positive Z and a positive pitch points downwards.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	return mgl32.Vec3{
		-TableSin(yawRad) * TableCos(pitchRad),
		-TableSin(pitchRad),
		TableCos(yawRad) * TableCos(pitchRad),
	}
}

// RotationToPoint returns the yaw and pitch, in degrees, needed to be aiming from origin at target.
func RotationToPoint(origin, target mgl32.Vec3) (yaw, pitch float32) {
	diff := target.Sub(origin)
	hz := math32.Sqrt(diff[0]*diff[0] + diff[2]*diff[2])

	pitch = -math32.Atan2(diff[1], hz) / math32.Pi * 180
	yaw = math32.Atan2(diff[2], diff[0])/math32.Pi*180 - 90
	if yaw <= -180 {
		yaw += 360
	}
	return yaw, pitch
}
