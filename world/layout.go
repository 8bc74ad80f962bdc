package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/item"
)

// Placement places a catalog item in the world.
type Placement struct {
	Name     string
	Position mgl32.Vec3
}

// Box is a ground structure placed on top of the ground slab.
type Box struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3
}

// Attributes describe the layout of a world.
type Attributes struct {
	// Width and Depth are the size of the walkable area along X and Z.
	Width, Depth float32
	// GroundHalfHeight is the half height of the ground slab, which is centred on the origin.
	GroundHalfHeight float32
	WallHeight       float32
	WallThickness    float32

	Boxes []Box
	Items []Placement
	// ItemRadius is the radius of the pickup volume of placed items.
	ItemRadius float32
}

// DefaultAttributes returns the attributes of the default arena: a 100x100 ground slab enclosed by walls,
// two box structures and two speed boosts.
func DefaultAttributes() Attributes {
	return Attributes{
		Width:            100,
		Depth:            100,
		GroundHalfHeight: 2,
		WallHeight:       50,
		WallThickness:    5,
		Boxes: []Box{
			{Center: mgl32.Vec3{10.5, 1.5, -10.5}, Size: mgl32.Vec3{6, 2, 6}},
			{Center: mgl32.Vec3{20, 1.5, 20}, Size: mgl32.Vec3{6, 2, 6}},
		},
		Items: []Placement{
			{Name: "Increase Speed", Position: mgl32.Vec3{-15, 0.75, 15}},
			{Name: "Increase Speed", Position: mgl32.Vec3{15, 0.75, -15}},
		},
		ItemRadius: 0.5,
	}
}

// DefaultLayout builds a world from the attributes passed, taking placed items from the catalog. An error
// is returned if a placement names an item the catalog does not have.
func DefaultLayout(attrs Attributes, catalog *item.Catalog) (*World, error) {
	w := New()

	halfW, halfD := attrs.Width/2, attrs.Depth/2
	w.AddSurface(Surface{
		Kind:        SurfaceGround,
		HalfExtents: mgl32.Vec3{halfW, attrs.GroundHalfHeight, halfD},
	})

	halfT, halfH := attrs.WallThickness/2, attrs.WallHeight/2
	for _, wall := range []Surface{
		{Center: mgl32.Vec3{halfW + halfT, halfH, 0}, HalfExtents: mgl32.Vec3{halfT, halfH, halfD + attrs.WallThickness}},
		{Center: mgl32.Vec3{-halfW - halfT, halfH, 0}, HalfExtents: mgl32.Vec3{halfT, halfH, halfD + attrs.WallThickness}},
		{Center: mgl32.Vec3{0, halfH, halfD + halfT}, HalfExtents: mgl32.Vec3{halfW, halfH, halfT}},
		{Center: mgl32.Vec3{0, halfH, -halfD - halfT}, HalfExtents: mgl32.Vec3{halfW, halfH, halfT}},
	} {
		wall.Kind = SurfaceWall
		w.AddSurface(wall)
	}

	for _, b := range attrs.Boxes {
		w.AddSurface(Surface{Kind: SurfaceGround, Center: b.Center, HalfExtents: b.Size.Mul(0.5)})
	}

	for _, placement := range attrs.Items {
		it, err := catalog.Item(placement.Name)
		if err != nil {
			return nil, err
		}
		w.AddItem(it, placement.Position, attrs.ItemRadius)
	}
	return w, nil
}
