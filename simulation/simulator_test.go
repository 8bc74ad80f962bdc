package simulation

import (
	"io"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/player"
	"github.com/oomph-ac/groundwork/settings"
	"github.com/oomph-ac/groundwork/world"
	"github.com/sirupsen/logrus"
)

func newTestSimulator(t *testing.T, s settings.Settings) *Simulator {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	w, err := world.DefaultLayout(world.DefaultAttributes(), item.DefaultCatalog())
	if err != nil {
		t.Fatalf("failed building world: %v", err)
	}
	return New(log, s, w)
}

func standing(x, z float32) *player.Pose {
	return &player.Pose{Position: mgl32.Vec3{x, 2.5, z}, HalfExtents: player.DefaultHalfExtents}
}

func mustItem(t *testing.T, name string) item.Item {
	t.Helper()
	it, err := item.DefaultCatalog().Item(name)
	if err != nil {
		t.Fatal(err)
	}
	return it
}

func TestLandingRequestsVelocityReset(t *testing.T) {
	sim := newTestSimulator(t, settings.DefaultSettings())
	p := sim.NewPlayer("tester")

	airborne := &player.Pose{Position: mgl32.Vec3{0, 5, 0}, HalfExtents: player.DefaultHalfExtents}
	res, _ := sim.Tick(time.Second/60, map[entity.ID]player.Input{p.ID(): {Pose: airborne, Jump: true}}).Player(p.ID())
	if res.Ground != player.Airborne || res.JumpVelocity != 0 {
		t.Fatalf("expected an airborne player that cannot jump, got %v (jump %v)", res.Ground, res.JumpVelocity)
	}

	res, _ = sim.Tick(time.Second/60, map[entity.ID]player.Input{p.ID(): {Pose: standing(0, 0)}}).Player(p.ID())
	if res.Ground != player.Grounded || !res.ZeroVerticalVelocity {
		t.Fatalf("expected landing to request a velocity reset, got %v (reset=%v)", res.Ground, res.ZeroVerticalVelocity)
	}

	res, _ = sim.Tick(time.Second/60, map[entity.ID]player.Input{p.ID(): {Jump: true, Move: mgl32.Vec2{1, 0}}}).Player(p.ID())
	if res.ZeroVerticalVelocity {
		t.Fatal("expected no velocity reset while staying on the ground")
	}
	if res.JumpVelocity == 0 {
		t.Fatal("expected a grounded player to jump")
	}
	if res.Displacement.X() <= 0 || res.Displacement.Z() != 0 {
		t.Fatalf("expected displacement along +X, got %v", res.Displacement)
	}
}

func TestPickupAndSpeedBoost(t *testing.T) {
	sim := newTestSimulator(t, settings.DefaultSettings())
	p := sim.NewPlayer("tester")
	boost := sim.World().Items()[0]

	sim.PushCollision(event.Collision{A: p.ID(), B: boost.ID, Sensor: true})
	r := sim.Tick(time.Second, map[entity.ID]player.Input{p.ID(): {Pose: standing(-15, 15)}})
	res, _ := r.Player(p.ID())
	if len(res.PickedUp) != 1 || res.PickedUp[0] != boost.ID {
		t.Fatalf("expected the boost to be picked up, got %v", res.PickedUp)
	}
	if !r.Despawns(boost.ID, event.DespawnPickup) {
		t.Fatalf("expected a pickup despawn, got %v", r.Despawned)
	}
	if !res.InventoryChanged || len(res.Inventory.Items()) != 1 {
		t.Fatal("expected the boost to show up in the inventory view")
	}
	if _, ok := sim.World().Item(boost.ID); ok {
		t.Fatal("expected the boost to leave the world")
	}

	// A second contact with the claimed item does nothing.
	sim.PushCollision(event.Collision{A: boost.ID, B: p.ID(), Sensor: true})
	res, _ = sim.Tick(time.Second, map[entity.ID]player.Input{p.ID(): {UseSelected: true}}).Player(p.ID())
	if len(res.PickedUp) != 0 {
		t.Fatalf("expected nothing to be picked up, got %v", res.PickedUp)
	}
	if res.Stats.Speed != 20 {
		t.Fatalf("expected speed 20 after using the boost, got %v", res.Stats.Speed)
	}

	for range make([]struct{}, 9) {
		res, _ = sim.Tick(time.Second, nil).Player(p.ID())
	}
	if res.Stats.Speed != 20 {
		t.Fatalf("expected the boost to last for 9 more ticks, got speed %v", res.Stats.Speed)
	}
	res, _ = sim.Tick(time.Second, nil).Player(p.ID())
	if res.Stats.Speed != 10 {
		t.Fatalf("expected speed to revert to 10 after 10s, got %v", res.Stats.Speed)
	}
}

func TestSingleTickBoostIsObserved(t *testing.T) {
	s := settings.DefaultSettings()
	sim := newTestSimulator(t, s)
	p := sim.NewPlayer("tester")
	dt := s.TickDuration()

	boost := item.Item{Name: "Sip", Effect: item.IncreaseSpeed{Amount: 10, Duration: dt}}
	if _, err := p.Inventory().Add(boost); err != nil {
		t.Fatal(err)
	}

	res, _ := sim.Tick(dt, map[entity.ID]player.Input{p.ID(): {Pose: standing(0, 0), UseSelected: true}}).Player(p.ID())
	if res.Stats.Speed != 20 {
		t.Fatalf("expected the boost to show in the activation tick, got speed %v", res.Stats.Speed)
	}

	res, _ = sim.Tick(dt, map[entity.ID]player.Input{p.ID(): {Move: mgl32.Vec2{1, 0}}}).Player(p.ID())
	if want := 20 * float32(dt.Seconds()); !game.Float32ApproxEq(res.Displacement.X(), want) {
		t.Fatalf("expected the next tick to move with the boosted speed (%v), got %v", want, res.Displacement.X())
	}
	if res.Stats.Speed != 10 {
		t.Fatalf("expected the boost to expire after one tick, got speed %v", res.Stats.Speed)
	}
}

func TestCollisionQueueDropsOldest(t *testing.T) {
	s := settings.DefaultSettings()
	s.Simulation.CollisionQueueSize = 2
	sim := newTestSimulator(t, s)
	p := sim.NewPlayer("tester")

	var ids []entity.ID
	for i := 0; i < 3; i++ {
		ids = append(ids, sim.World().AddItem(mustItem(t, "Stone"), mgl32.Vec3{float32(i), 2.5, 0}, 0.5))
	}
	for _, id := range ids {
		sim.PushCollision(event.Collision{A: p.ID(), B: id, Sensor: true})
	}

	res, _ := sim.Tick(time.Second/60, nil).Player(p.ID())
	if len(res.PickedUp) != 2 || res.PickedUp[0] != ids[1] || res.PickedUp[1] != ids[2] {
		t.Fatalf("expected only the two newest collisions to be handled, got %v", res.PickedUp)
	}
	if _, ok := sim.World().Item(ids[0]); !ok {
		t.Fatal("expected the item of the dropped collision to stay in the world")
	}
}

func TestSolidContactDoesNotPickUp(t *testing.T) {
	sim := newTestSimulator(t, settings.DefaultSettings())
	p := sim.NewPlayer("tester")
	boost := sim.World().Items()[0]

	sim.PushCollision(event.Collision{A: p.ID(), B: boost.ID})
	res, _ := sim.Tick(time.Second/60, map[entity.ID]player.Input{p.ID(): {Pose: standing(-15, 15)}}).Player(p.ID())
	if len(res.PickedUp) != 0 {
		t.Fatalf("expected a solid contact to leave the item alone, got %v", res.PickedUp)
	}
	if _, ok := sim.World().Item(boost.ID); !ok {
		t.Fatal("expected the item to stay in the world")
	}

	sim.PushCollision(event.Collision{A: boost.ID, B: p.ID(), Sensor: true})
	if res, _ = sim.Tick(time.Second/60, nil).Player(p.ID()); len(res.PickedUp) != 1 {
		t.Fatalf("expected a sensor contact to pick the item up, got %v", res.PickedUp)
	}
}

func TestProjectileLifecycle(t *testing.T) {
	sim := newTestSimulator(t, settings.DefaultSettings())
	p := sim.NewPlayer("tester")
	for range make([]struct{}, 2) {
		if _, err := p.Inventory().Add(mustItem(t, "Stone")); err != nil {
			t.Fatal(err)
		}
	}

	r := sim.Tick(time.Second, map[entity.ID]player.Input{p.ID(): {Pose: standing(0, 0), UseSelected: true}})
	if len(r.Spawned) != 1 || r.Spawned[0].ID == entity.Nil {
		t.Fatalf("expected a projectile to spawn, got %v", r.Spawned)
	}
	timedOut := r.Spawned[0].ID

	for i := 2; i <= 5; i++ {
		if r = sim.Tick(time.Second, nil); r.Despawns(timedOut, event.DespawnTimeout) {
			t.Fatalf("projectile timed out early at %v", r.Now)
		}
	}
	if r = sim.Tick(time.Second, nil); !r.Despawns(timedOut, event.DespawnTimeout) {
		t.Fatalf("expected the projectile to time out 5s after spawning, got %v", r.Despawned)
	}

	p.Inventory().SelectNext()
	r = sim.Tick(time.Second, map[entity.ID]player.Input{p.ID(): {UseSelected: true}})
	if len(r.Spawned) != 1 {
		t.Fatalf("expected a second projectile, got %v", r.Spawned)
	}
	hit := r.Spawned[0].ID
	ground := sim.World().GroundSurfaces()[0]

	// The thrower never destroys its own projectile.
	sim.PushCollision(event.Collision{A: hit, B: p.ID()})
	sim.PushCollision(event.Collision{A: hit, B: ground.ID})
	if r = sim.Tick(time.Second, nil); !r.Despawns(hit, event.DespawnCollision) {
		t.Fatalf("expected the projectile to be destroyed by the ground 1s after spawning, got %v", r.Despawned)
	}
	for range make([]struct{}, 6) {
		if r = sim.Tick(time.Second, nil); len(r.Despawned) != 0 {
			t.Fatalf("expected the projectile to be destroyed once, got %v", r.Despawned)
		}
	}
}

func TestReplacedWeaponReturnsToWorld(t *testing.T) {
	sim := newTestSimulator(t, settings.DefaultSettings())
	p := sim.NewPlayer("tester")
	before := len(sim.World().Items())

	for range make([]struct{}, 2) {
		if _, err := p.Inventory().Add(mustItem(t, "Wooden Sword")); err != nil {
			t.Fatal(err)
		}
	}
	sim.Tick(time.Second/60, map[entity.ID]player.Input{p.ID(): {Pose: standing(3, 3), UseSelected: true}})
	p.WithLock(func(p *player.Player) { p.Inventory().SelectNext() })
	r := sim.Tick(time.Second/60, map[entity.ID]player.Input{p.ID(): {UseSelected: true}})

	if len(r.Dropped) != 1 || r.Dropped[0].ID == entity.Nil {
		t.Fatalf("expected the replaced sword to drop, got %v", r.Dropped)
	}
	if len(sim.World().Items()) != before+1 {
		t.Fatal("expected the dropped sword to be a world item")
	}
	if r.Dropped[0].Position != (mgl32.Vec3{3, 2, 3}) {
		t.Fatalf("expected the sword at the player's feet, got %v", r.Dropped[0].Position)
	}
}

func TestRemovedPlayerIsNotTicked(t *testing.T) {
	sim := newTestSimulator(t, settings.DefaultSettings())
	p := sim.NewPlayer("tester")

	sim.RemovePlayer(p.ID())
	if _, ok := sim.Tick(time.Second/60, nil).Player(p.ID()); ok {
		t.Fatal("expected a removed player to be skipped")
	}
	sim.AddPlayer(p)
	if _, ok := sim.Tick(time.Second/60, nil).Player(p.ID()); !ok {
		t.Fatal("expected a re-added player to tick")
	}
}

type panickingEffects struct{}

func (panickingEffects) Activate(item.Effect, player.Activation) {}
func (panickingEffects) Tick(time.Duration)                      { panic("broken effects") }
func (panickingEffects) Active() []player.TimedEffect            { return nil }

func TestPanickingPlayerIsIsolated(t *testing.T) {
	sim := newTestSimulator(t, settings.DefaultSettings())
	broken := sim.NewPlayer("broken")
	broken.SetEffects(panickingEffects{})
	healthy := sim.NewPlayer("healthy")

	r := sim.Tick(time.Second/60, nil)
	if _, ok := r.Player(broken.ID()); ok {
		t.Fatal("expected no result for the panicking player")
	}
	if _, ok := r.Player(healthy.ID()); !ok {
		t.Fatal("expected the healthy player to tick")
	}

	// The broken player's lock must have been released.
	broken.SetPose(*standing(0, 0))
}
