package main

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/player"
	"github.com/oomph-ac/groundwork/simulation"
	"github.com/sirupsen/logrus"
)

const gravity = float32(9.81)

// host is a minimal kinematic stand-in for a physics engine: it applies gravity, resolves penetration with
// ground surfaces and reports touched items as collisions.
type host struct {
	sim *simulation.Simulator
	p   *player.Player
	log *logrus.Logger

	pose     player.Pose
	velocity mgl32.Vec3

	projectiles map[entity.ID]*projectile
	swings      int
	useNext     bool
}

// projectile is a projectile the host moves through the world.
type projectile struct {
	id       entity.ID
	velocity mgl32.Vec3
}

func newHost(sim *simulation.Simulator, p *player.Player, pose player.Pose) *host {
	return &host{
		sim:         sim,
		p:           p,
		log:         p.Log(),
		pose:        pose,
		projectiles: make(map[entity.ID]*projectile),
	}
}

// done returns true once every item was collected and every projectile is gone.
func (h *host) done() bool {
	return len(h.sim.World().Items()) == 0 && len(h.projectiles) == 0 && h.swings == 0
}

func (h *host) step(dt time.Duration) {
	for _, id := range h.sim.World().ItemsWithin(h.pose.BBox()) {
		h.sim.PushCollision(event.Collision{A: h.p.ID(), B: id, Sensor: true})
	}

	pose := h.pose
	in := player.Input{Pose: &pose, Move: h.intent(), UseSelected: h.useNext, Melee: h.swings > 0}
	h.useNext = false
	res := h.sim.Tick(dt, map[entity.ID]player.Input{h.p.ID(): in})

	pr, ok := res.Player(h.p.ID())
	if !ok {
		return
	}
	if len(pr.PickedUp) > 0 {
		h.log.WithField("inventory", len(pr.Inventory.Items())).Infof("picked up %d item(s)", len(pr.PickedUp))
		// Items always land in the first slot, which stays selected.
		h.useNext = true
		if it := pr.Inventory.Slots[0]; pr.Inventory.Occupied[0] && it.Category == item.CategoryWeapon {
			h.swings = 8
		}
	}
	if pr.MeleeUsed {
		h.swings--
	}
	for _, b := range res.Broken {
		h.log.Infof("%s broke", b.Weapon.Name)
		h.swings = 0
	}
	for _, spawn := range res.Spawned {
		h.log.WithField("position", spawn.Position).Info("projectile thrown")
		h.projectiles[spawn.ID] = &projectile{id: spawn.ID, velocity: spawn.Velocity}
	}
	for _, d := range res.Despawned {
		if _, ok := h.projectiles[d.ID]; ok {
			h.log.Infof("projectile destroyed (%v)", d.Reason)
			delete(h.projectiles, d.ID)
		}
	}

	h.integrate(pr, dt)
	h.moveProjectiles(dt)
}

// intent steers the player towards the nearest world item.
func (h *host) intent() mgl32.Vec2 {
	items := h.sim.World().Items()
	if len(items) == 0 {
		return mgl32.Vec2{}
	}
	nearest, best := items[0], float32(-1)
	for _, it := range items {
		if d := game.Vec3HzDistSqr(it.Position.Sub(h.pose.Position)); best < 0 || d < best {
			nearest, best = it, d
		}
	}
	delta := nearest.Position.Sub(h.pose.Position)
	return mgl32.Vec2{delta.X(), delta.Z()}
}

func (h *host) integrate(pr player.TickResult, dt time.Duration) {
	seconds := float32(dt.Seconds())
	if pr.ZeroVerticalVelocity && h.velocity.Y() < 0 {
		h.velocity[1] = 0
	}
	if pr.JumpVelocity > 0 {
		h.velocity[1] = pr.JumpVelocity
	}
	if pr.Ground == player.Airborne || h.velocity.Y() > 0 {
		h.velocity[1] -= gravity * seconds
	}

	h.pose.Position = h.pose.Position.Add(pr.Displacement).Add(h.velocity.Mul(seconds))
	for _, s := range h.sim.World().GroundSurfaces() {
		if !game.FootprintsOverlap(h.pose.Position, h.pose.HalfExtents, s.Center, s.HalfExtents) {
			continue
		}
		feet := h.pose.Position.Y() - h.pose.HalfExtents.Y()
		if feet < s.Top() && h.pose.Position.Y() > s.Top()-h.pose.HalfExtents.Y() {
			h.pose.Position[1] = s.Top() + h.pose.HalfExtents.Y()
			if h.velocity.Y() < 0 {
				h.velocity[1] = 0
			}
		}
	}
}

func (h *host) moveProjectiles(dt time.Duration) {
	seconds := float32(dt.Seconds())
	surfaces := h.sim.World().Surfaces()
	for id, pr := range h.projectiles {
		current, ok := h.sim.World().Projectiles().Projectile(id)
		if !ok {
			delete(h.projectiles, id)
			continue
		}
		pr.velocity[1] -= gravity * seconds
		if d, hit := h.sim.World().Projectiles().Trace(id, current.Position.Add(pr.velocity.Mul(seconds)), surfaces); hit {
			h.log.Infof("projectile hit a surface (%v)", d.Reason)
			delete(h.projectiles, id)
		}
	}
}
