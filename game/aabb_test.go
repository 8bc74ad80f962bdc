package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBBoxFromCenter(t *testing.T) {
	center, half := mgl32.Vec3{10.5, 1.5, -10.5}, mgl32.Vec3{3, 1, 3}
	bb := BBoxFromCenter(center, half)

	if bb.Min() != (mgl32.Vec3{7.5, 0.5, -13.5}) || bb.Max() != (mgl32.Vec3{13.5, 2.5, -7.5}) {
		t.Fatalf("unexpected box %v -> %v", bb.Min(), bb.Max())
	}
}

func TestAABBVectorDistance(t *testing.T) {
	bb := BBoxFromCenter(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	if d := AABBVectorDistance(bb, mgl32.Vec3{0.5, 0, 0}); d != 0 {
		t.Fatalf("expected inside point to have distance 0, got %v", d)
	}
	if d := AABBVectorDistance(bb, mgl32.Vec3{4, 0, 0}); !Float32ApproxEq(d, 3) {
		t.Fatalf("expected distance 3, got %v", d)
	}
	if d := AABBVectorDistance(bb, mgl32.Vec3{4, 5, 1}); !Float32ApproxEq(d, 5) {
		t.Fatalf("expected distance 5, got %v", d)
	}
}

func TestFootprintsOverlap(t *testing.T) {
	half := mgl32.Vec3{0.5, 0.5, 0.5}
	if !FootprintsOverlap(mgl32.Vec3{}, half, mgl32.Vec3{1, 10, 0}, half) {
		t.Fatal("touching footprints must overlap regardless of height")
	}
	if FootprintsOverlap(mgl32.Vec3{}, half, mgl32.Vec3{0, 0, 1.01}, half) {
		t.Fatal("separated footprints must not overlap")
	}
}
