package world

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/oerror"
)

// Item is an item lying in the world, waiting to be picked up.
type Item struct {
	ID       entity.ID
	Item     item.Item
	Position mgl32.Vec3
	// Radius is the radius of the pickup volume around the item.
	Radius float32
}

// Groups returns the collision groups of a world item: it is only picked up by players.
func (Item) Groups() event.Groups {
	return event.Groups{Memberships: event.GroupItem, Filter: event.GroupPlayer}
}

// World holds the static surfaces of a scene, the items lying in it and the projectiles flying through it.
// It is safe for concurrent use.
type World struct {
	mu       sync.RWMutex
	surfaces *orderedmap.OrderedMap[entity.ID, Surface]
	items    *orderedmap.OrderedMap[entity.ID, Item]

	projectiles *Projectiles
}

// New returns an empty world.
func New() *World {
	return &World{
		surfaces:    orderedmap.NewOrderedMap[entity.ID, Surface](),
		items:       orderedmap.NewOrderedMap[entity.ID, Item](),
		projectiles: NewProjectiles(),
	}
}

// AddSurface adds a static surface to the world and returns its ID. A surface without an ID is given a new one.
func (w *World) AddSurface(s Surface) entity.ID {
	if s.ID == entity.Nil {
		s.ID = entity.NewID()
	}
	w.mu.Lock()
	w.surfaces.Set(s.ID, s)
	w.mu.Unlock()
	return s.ID
}

// Surface returns the surface with the ID passed.
func (w *World) Surface(id entity.ID) (Surface, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.surfaces.Get(id)
}

// Surfaces returns every surface in the order they were added.
func (w *World) Surfaces() []Surface {
	w.mu.RLock()
	defer w.mu.RUnlock()

	surfaces := make([]Surface, 0, w.surfaces.Len())
	for el := w.surfaces.Front(); el != nil; el = el.Next() {
		surfaces = append(surfaces, el.Value)
	}
	return surfaces
}

// GroundSurfaces returns the surfaces of kind SurfaceGround.
func (w *World) GroundSurfaces() []Surface {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var surfaces []Surface
	for el := w.surfaces.Front(); el != nil; el = el.Next() {
		if el.Value.Kind == SurfaceGround {
			surfaces = append(surfaces, el.Value)
		}
	}
	return surfaces
}

// AddItem places an item in the world with a spherical pickup volume of the radius passed, and returns
// the ID of the world item.
func (w *World) AddItem(it item.Item, pos mgl32.Vec3, radius float32) entity.ID {
	id := entity.NewID()
	w.mu.Lock()
	w.items.Set(id, Item{ID: id, Item: it, Position: pos, Radius: radius})
	w.mu.Unlock()
	return id
}

// Item returns the world item with the ID passed.
func (w *World) Item(id entity.ID) (Item, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.items.Get(id)
}

// Items returns every item lying in the world, in the order they were added.
func (w *World) Items() []Item {
	w.mu.RLock()
	defer w.mu.RUnlock()

	items := make([]Item, 0, w.items.Len())
	for el := w.items.Front(); el != nil; el = el.Next() {
		items = append(items, el.Value)
	}
	return items
}

// ItemsWithin returns the IDs of the world items whose spherical pickup volume intersects the box passed.
// It may be used by hosts that do not report sensor collisions.
func (w *World) ItemsWithin(bb cube.BBox) []entity.ID {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var ids []entity.ID
	for el := w.items.Front(); el != nil; el = el.Next() {
		if game.AABBVectorDistance(bb, el.Value.Position) <= el.Value.Radius {
			ids = append(ids, el.Key)
		}
	}
	return ids
}

// Transfer claims a world item. f is called with the item while the world is locked; if it returns nil
// the item is removed from the world, otherwise the item stays in the world and the error of f is returned.
// An item can therefore never be owned by both the world and an inventory.
func (w *World) Transfer(id entity.ID, f func(it item.Item) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	wi, ok := w.items.Get(id)
	if !ok {
		return oerror.New(game.ErrorItemAlreadyClaimed, id)
	}
	if err := f(wi.Item); err != nil {
		return err
	}
	w.items.Delete(id)
	return nil
}

// Projectiles returns the projectile registry of the world.
func (w *World) Projectiles() *Projectiles {
	return w.projectiles
}

// Kind returns the kind of the entity with the ID passed. KindUnknown is returned for entities the world
// does not own, such as players.
func (w *World) Kind(id entity.ID) entity.Kind {
	w.mu.RLock()
	s, isSurface := w.surfaces.Get(id)
	_, isItem := w.items.Get(id)
	w.mu.RUnlock()

	switch {
	case isSurface:
		return s.EntityKind()
	case isItem:
		return entity.KindItem
	case w.projectiles.Has(id):
		return entity.KindProjectile
	}
	return entity.KindUnknown
}
