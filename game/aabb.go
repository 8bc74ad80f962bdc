package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BBoxFromCenter returns the bounding box centered on center with the given half extents.
func BBoxFromCenter(center, halfExtents mgl32.Vec3) cube.BBox {
	return cube.Box(
		center.X()-halfExtents.X(), center.Y()-halfExtents.Y(), center.Z()-halfExtents.Z(),
		center.X()+halfExtents.X(), center.Y()+halfExtents.Y(), center.Z()+halfExtents.Z(),
	)
}

// AABBVectorDistance calculates the distance between an AABB and a vector. Points inside the box
// have a distance of zero.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	dist := math32.Sqrt(x*x + y*y + z*z)
	if math32.IsNaN(dist) {
		dist = 0
	}
	return dist
}

// FootprintsOverlap reports whether the X/Z footprints of two boxes given by center and half extents
// overlap. Touching edges count as overlap.
func FootprintsOverlap(aCenter, aHalf, bCenter, bHalf mgl32.Vec3) bool {
	return math32.Abs(aCenter.X()-bCenter.X()) <= aHalf.X()+bHalf.X() &&
		math32.Abs(aCenter.Z()-bCenter.Z()) <= aHalf.Z()+bHalf.Z()
}
