package world

import (
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
)

// ProjectileRadius is the half size of a projectile's collision box used by Trace.
const ProjectileRadius = float32(0.25)

// Projectile is a thrown object flying through the world.
type Projectile struct {
	ID       entity.ID
	Owner    entity.ID
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Groups   event.Groups
	Visual   string

	// SpawnedAt is the simulation time the projectile was spawned at.
	SpawnedAt time.Duration
	Lifetime  time.Duration
}

// Expired returns true if the projectile outlived its lifetime at the simulation time passed.
func (p Projectile) Expired(now time.Duration) bool {
	return now-p.SpawnedAt >= p.Lifetime
}

// BBox returns the collision box of the projectile.
func (p Projectile) BBox() cube.BBox {
	return game.BBoxFromCenter(p.Position, mgl32.Vec3{ProjectileRadius, ProjectileRadius, ProjectileRadius})
}

// Projectiles tracks the live projectiles of a world. Every projectile is destroyed exactly once, either
// when it collides with a surface or when its lifetime runs out, whichever happens first.
type Projectiles struct {
	mu   sync.Mutex
	live *orderedmap.OrderedMap[entity.ID, Projectile]
}

// NewProjectiles returns an empty projectile registry.
func NewProjectiles() *Projectiles {
	return &Projectiles{live: orderedmap.NewOrderedMap[entity.ID, Projectile]()}
}

// Spawn registers a projectile for the request passed at simulation time now, and returns its ID.
func (ps *Projectiles) Spawn(req event.SpawnProjectile, now time.Duration) entity.ID {
	id := entity.NewID()
	ps.mu.Lock()
	ps.live.Set(id, Projectile{
		ID:        id,
		Owner:     req.Owner,
		Position:  req.Position,
		Velocity:  req.Velocity,
		Groups:    req.Groups,
		Visual:    req.Visual,
		SpawnedAt: now,
		Lifetime:  req.Lifetime,
	})
	ps.mu.Unlock()
	return id
}

// Projectile returns the live projectile with the ID passed.
func (ps *Projectiles) Projectile(id entity.ID) (Projectile, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.live.Get(id)
}

// Has returns true if a projectile with the ID passed is alive.
func (ps *Projectiles) Has(id entity.ID) bool {
	_, ok := ps.Projectile(id)
	return ok
}

// Len returns the amount of live projectiles.
func (ps *Projectiles) Len() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.live.Len()
}

// Sweep destroys every projectile that expired at simulation time now and returns their despawn requests.
func (ps *Projectiles) Sweep(now time.Duration) []event.Despawn {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	var expired []event.Despawn
	for el := ps.live.Front(); el != nil; el = el.Next() {
		if el.Value.Expired(now) {
			expired = append(expired, event.Despawn{ID: el.Key, Reason: event.DespawnTimeout})
		}
	}
	for _, d := range expired {
		ps.live.Delete(d.ID)
	}
	return expired
}

// SurfaceSource looks up static surfaces by their ID.
type SurfaceSource interface {
	Surface(id entity.ID) (Surface, bool)
}

// Collide handles a collision reported by the host. If it is between a live projectile and a surface the
// projectile may collide with, the projectile is destroyed and its despawn request is returned.
func (ps *Projectiles) Collide(c event.Collision, surfaces SurfaceSource) (event.Despawn, bool) {
	if c.Stopped {
		return event.Despawn{}, false
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	p, ok := ps.live.Get(c.A)
	if !ok {
		if p, ok = ps.live.Get(c.B); !ok {
			return event.Despawn{}, false
		}
	}
	other, _ := c.Other(p.ID)
	s, ok := surfaces.Surface(other)
	if !ok || !p.Groups.Interacts(s.Groups()) {
		return event.Despawn{}, false
	}
	ps.live.Delete(p.ID)
	return event.Despawn{ID: p.ID, Reason: event.DespawnCollision}, true
}

// Trace moves the projectile with the ID passed to the position to, and tests the path against the
// surfaces passed. If the path hits a surface the projectile may collide with, the projectile is destroyed
// at the nearest hit and its despawn request is returned. Hosts that do not report projectile collisions
// may use Trace instead of Collide.
func (ps *Projectiles) Trace(id entity.ID, to mgl32.Vec3, surfaces []Surface) (event.Despawn, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	p, ok := ps.live.Get(id)
	if !ok {
		return event.Despawn{}, false
	}

	from := p.Position
	nearest, hit := float32(-1), false
	for _, s := range surfaces {
		if !p.Groups.Interacts(s.Groups()) {
			continue
		}
		bb := s.BBox().Grow(ProjectileRadius)
		if bb.Vec3Within(from) {
			nearest, hit = 0, true
			break
		}
		result, ok := trace.BBoxIntercept(bb, from, to)
		if !ok {
			continue
		}
		if dist := result.Position().Sub(from).Len(); !hit || dist < nearest {
			nearest, hit = dist, true
		}
	}

	if !hit {
		p.Position = to
		ps.live.Set(id, p)
		return event.Despawn{}, false
	}
	ps.live.Delete(id)
	return event.Despawn{ID: id, Reason: event.DespawnCollision}, true
}
