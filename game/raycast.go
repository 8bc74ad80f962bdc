package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RayIntersectAABB intersects a ray with the box described by center and halfExtents using the slab
// method. The distance returned is the parametric distance along direction to the point where the ray
// enters the box. An origin inside the box (within InsideEpsilon) is treated as contact and yields a
// distance of 0. A zero direction component makes the ray parallel to that pair of slabs: it then only
// intersects if the origin lies within the slab.
func RayIntersectAABB(origin, direction, center, halfExtents mgl32.Vec3) (float32, bool) {
	if pointInBox(origin, center, halfExtents, InsideEpsilon) {
		return 0, true
	}

	entry, exit := math32.Inf(-1), math32.Inf(1)
	for i := 0; i < 3; i++ {
		min, max := center[i]-halfExtents[i], center[i]+halfExtents[i]
		if direction[i] == 0 {
			if origin[i] < min || origin[i] > max {
				return 0, false
			}
			continue
		}

		inv := 1 / direction[i]
		t1, t2 := (min-origin[i])*inv, (max-origin[i])*inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		entry = math32.Max(entry, t1)
		exit = math32.Min(exit, t2)
	}

	if entry > exit || exit < 0 {
		return 0, false
	}
	return entry, true
}

// MultiRayIntersectFromBox casts rays in direction from a grid of points spread across the bottom face of
// the actor box and returns the smallest non-negative hit distance against the surface box. Samples are
// spaced step apart on the X and Z axes and always include both edges of the footprint. A non-positive
// step only samples the footprint edges.
func MultiRayIntersectFromBox(actorCenter, actorHalf, surfaceCenter, surfaceHalf mgl32.Vec3, step float32, direction mgl32.Vec3) (float32, bool) {
	y := actorCenter.Y() - actorHalf.Y()
	minX, maxX := actorCenter.X()-actorHalf.X(), actorCenter.X()+actorHalf.X()
	minZ, maxZ := actorCenter.Z()-actorHalf.Z(), actorCenter.Z()+actorHalf.Z()
	stepsX, stepsZ := sampleCount(maxX-minX, step), sampleCount(maxZ-minZ, step)

	best, hit := float32(0), false
	for i := 0; i <= stepsX; i++ {
		x := sampleAt(minX, maxX, step, i, stepsX)
		for j := 0; j <= stepsZ; j++ {
			z := sampleAt(minZ, maxZ, step, j, stepsZ)
			dist, ok := RayIntersectAABB(mgl32.Vec3{x, y, z}, direction, surfaceCenter, surfaceHalf)
			if !ok || dist < 0 {
				continue
			}
			if !hit || dist < best {
				best, hit = dist, true
			}
		}
	}
	return best, hit
}

// SlabRayIntersectAABB is a constant cost alternative to MultiRayIntersectFromBox. It rejects surfaces
// whose X/Z footprint does not overlap the actor's at all, then performs a single slab test along the Y
// axis from the actor's bottom face. A hit is accepted when the ray enters before it exits and the exit
// lies no further than epsilon behind the origin; a negative entry is clamped to 0.
// Partial footprint overlaps are not filtered: any overlap is assumed to support the actor.
func SlabRayIntersectAABB(actorCenter, actorHalf, surfaceCenter, surfaceHalf, direction mgl32.Vec3, epsilon float32) (float32, bool) {
	if !FootprintsOverlap(actorCenter, actorHalf, surfaceCenter, surfaceHalf) {
		return 0, false
	}

	y := actorCenter.Y() - actorHalf.Y()
	bottom, top := surfaceCenter.Y()-surfaceHalf.Y(), surfaceCenter.Y()+surfaceHalf.Y()
	dy := direction.Y()
	if dy == 0 {
		if y < bottom-epsilon || y > top+epsilon {
			return 0, false
		}
		return 0, true
	}

	entry, exit := (bottom-y)/dy, (top-y)/dy
	if entry > exit {
		entry, exit = exit, entry
	}
	if exit < -epsilon {
		return 0, false
	}
	return math32.Max(entry, 0), true
}

// Grounding is the decision rule shared by every probe: a hit only supports an actor if it lies between
// the probe origin and rayLength.
func Grounding(dist float32, ok bool, rayLength float32) bool {
	return ok && dist >= 0 && dist <= rayLength
}

func pointInBox(p, center, halfExtents mgl32.Vec3, epsilon float32) bool {
	for i := 0; i < 3; i++ {
		if math32.Abs(p[i]-center[i]) > halfExtents[i]+epsilon {
			return false
		}
	}
	return true
}

func sampleCount(extent, step float32) int {
	if step <= 0 || extent <= 0 {
		return 1
	}
	return int(math32.Ceil(extent / step))
}

func sampleAt(min, max, step float32, i, n int) float32 {
	if i == n {
		return max
	}
	if step <= 0 {
		return min
	}
	return math32.Min(min+float32(i)*step, max)
}
