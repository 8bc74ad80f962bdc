package player

import (
	"time"

	"github.com/oomph-ac/groundwork/item"
)

// TimedEffect is an active effect that reverts its stat change once it expires.
type TimedEffect struct {
	// Amount is the exact amount the effect added to the player's speed.
	Amount float32
	// Remaining is the time left until the effect expires.
	Remaining time.Duration
}

type EffectsComponent interface {
	// Activate applies the effect passed to the player.
	Activate(e item.Effect, ctx Activation)
	// Tick advances every timed effect by dt, reverting and removing those that expired.
	Tick(dt time.Duration)
	// Active returns the timed effects that are currently active.
	Active() []TimedEffect
}

func (p *Player) SetEffects(c EffectsComponent) {
	p.effects = c
}

func (p *Player) Effects() EffectsComponent {
	return p.effects
}
