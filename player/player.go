package player

import (
	"sync"

	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/settings"
	"github.com/sirupsen/logrus"
)

// Player is an actor controlled by a user. It owns its stats, inventory and effects, and is ticked once per
// simulation step. Every component of a player is only ever accessed while the player's mutex is held, so a
// single goroutine writes to a player's state during a tick.
type Player struct {
	log *logrus.Logger

	id   entity.ID
	name string

	settings settings.Settings
	emitter  event.Emitter

	mu sync.Mutex

	pose  Pose
	stats Stats

	pickups       []entity.ID
	groundContact bool
	lastDigest    uint64

	grounding  GroundingComponent
	inventory  InventoryComponent
	effects    EffectsComponent
	weapon     WeaponComponent
	camera     CameraComponent
	locomotion LocomotionComponent
}

// New creates a new player with the given name. Requests produced by the player are sent to the emitter
// passed. Components must be registered before the player is ticked.
func New(log *logrus.Logger, name string, s settings.Settings, emitter event.Emitter) *Player {
	if emitter == nil {
		emitter = event.Discard
	}
	return &Player{
		log: log,

		id:   entity.NewID(),
		name: name,

		settings: s,
		emitter:  emitter,

		pose: Pose{HalfExtents: DefaultHalfExtents},
		stats: Stats{
			Health: game.DefaultHealth,
			Speed:  float32(s.Movement.BaseSpeed),
		},
	}
}

// ID returns the entity ID of the player.
func (p *Player) ID() entity.ID {
	return p.id
}

// Name returns the name of the player.
func (p *Player) Name() string {
	return p.name
}

// Log returns the logger of the player.
func (p *Player) Log() *logrus.Logger {
	return p.log
}

// Settings returns the settings the player was created with.
func (p *Player) Settings() settings.Settings {
	return p.settings
}

// Emit sends a request to the host through the player's emitter.
func (p *Player) Emit(r event.Request) {
	p.emitter.Emit(r)
}

// Pose returns the last pose the host reported for the player.
func (p *Player) Pose() Pose {
	return p.pose
}

// SetPose sets the pose of the player. It must not be called while the player is being ticked.
func (p *Player) SetPose(pose Pose) {
	p.mu.Lock()
	p.pose = pose
	p.mu.Unlock()
}

// Stats returns the mutable stats of the player. Callers must be running as part of the player's tick.
func (p *Player) Stats() *Stats {
	return &p.stats
}

// StatsSnapshot returns a copy of the player's stats.
func (p *Player) StatsSnapshot() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// QueuePickup queues a world item the player touched. The item is claimed at the start of the player's next
// tick.
func (p *Player) QueuePickup(id entity.ID) {
	p.mu.Lock()
	p.pickups = append(p.pickups, id)
	p.mu.Unlock()
}

// QueueGroundContact records that the host reported a contact between the player and a ground surface.
func (p *Player) QueueGroundContact() {
	p.mu.Lock()
	p.groundContact = true
	p.mu.Unlock()
}

// Activation returns the context an item effect is activated with.
func (p *Player) Activation() Activation {
	pose := p.pose
	ctx := Activation{Owner: p.id, Pose: &pose}
	if p.camera != nil {
		ctx.Facing = p.camera.Facing()
	}
	return ctx
}

// View returns the current inventory view of the player.
func (p *Player) View() InventoryView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inventory.View()
}

// WithLock runs f while holding the player's mutex.
func (p *Player) WithLock(f func(p *Player)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f(p)
}
