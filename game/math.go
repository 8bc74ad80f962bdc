package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// DirectionVector returns a direction vector from the given yaw and pitch values in degrees. A yaw of 0
// faces +Z and positive pitch looks down.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		-m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// WrapYaw wraps a yaw value in degrees into [-180, 180).
func WrapYaw(yaw float32) float32 {
	yaw = math32.Mod(yaw+180, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw - 180
}

// ClampFloat32 clamps the given value to the given range.
func ClampFloat32(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// IsZeroVec3 reports whether every component of the vector is zero.
func IsZeroVec3(v mgl32.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
