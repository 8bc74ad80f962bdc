package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/player"
	"github.com/sirupsen/logrus"
)

// TimedEffect is an active effect that reverts its own amount once it expires.
type TimedEffect = player.TimedEffect

// EffectsComponent applies item effects to a player and keeps track of the timed ones. Timed effects stack:
// activating a speed boost while another is active adds a second, independent effect, and each reverts
// exactly the amount it added.
type EffectsComponent struct {
	mPlayer *player.Player
	active  []TimedEffect
}

// NewEffectsComponent returns a new effects component.
func NewEffectsComponent(p *player.Player) *EffectsComponent {
	return &EffectsComponent{mPlayer: p}
}

// Activate ...
func (c *EffectsComponent) Activate(e item.Effect, ctx player.Activation) {
	stats := c.mPlayer.Stats()
	switch e := e.(type) {
	case item.Heal:
		stats.Health += e.Amount
	case item.IncreaseSpeed:
		stats.Speed += e.Amount
		c.active = append(c.active, TimedEffect{Amount: e.Amount, Remaining: e.Duration})
	case item.Throw:
		c.throw(e, ctx)
	case item.WeaponItem:
		c.mPlayer.Weapon().Equip(e.Weapon)
	default:
		c.mPlayer.Log().Errorf(game.ErrorUnknownEffect, e)
	}
}

// throw spawns a projectile in front of the player, travelling along the direction it faces.
func (c *EffectsComponent) throw(e item.Throw, ctx player.Activation) {
	if ctx.Pose == nil || game.IsZeroVec3(ctx.Facing) {
		c.mPlayer.Log().WithFields(logrus.Fields{
			"player":  c.mPlayer.Name(),
			"hasPose": ctx.Pose != nil,
			"facing":  ctx.Facing,
		}).Debug("throw ignored: no pose or facing direction")
		return
	}

	s := c.mPlayer.Settings().Throw
	facing := ctx.Facing.Normalize()
	c.mPlayer.Emit(event.SpawnProjectile{
		Owner:    ctx.Owner,
		Position: ctx.Pose.Position.Add(mgl32.Vec3{facing.X(), float32(s.VerticalOffset), facing.Z()}),
		Velocity: facing.Mul(float32(s.Speed)),
		Lifetime: c.mPlayer.Settings().ProjectileLifetime(),
		Groups: event.Groups{
			Memberships: event.GroupProjectile,
			Filter:      event.GroupGround | event.GroupWall,
		},
		Visual: e.Visual,
	})
}

// Tick ...
func (c *EffectsComponent) Tick(dt time.Duration) {
	if len(c.active) == 0 {
		return
	}

	stats := c.mPlayer.Stats()
	remaining := c.active[:0]
	for _, e := range c.active {
		e.Remaining -= dt
		if e.Remaining <= 0 {
			stats.Speed -= e.Amount
			continue
		}
		remaining = append(remaining, e)
	}
	c.active = remaining
}

// Active ...
func (c *EffectsComponent) Active() []TimedEffect {
	active := make([]TimedEffect, len(c.active))
	copy(active, c.active)
	return active
}
