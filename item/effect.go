package item

import "time"

// Effect is what happens when an item is activated. The set of effects is closed: IncreaseSpeed, Heal,
// Throw and WeaponItem are the only implementations.
type Effect interface {
	effect()
}

// IncreaseSpeed adds Amount to the holder's speed for Duration, after which exactly Amount is taken off
// again.
type IncreaseSpeed struct {
	Amount   float32
	Duration time.Duration
}

// Heal instantly adds Amount to the holder's health.
type Heal struct {
	Amount float32
}

// Throw launches a projectile in the direction the holder is facing. Visual is an opaque reference the
// host uses to pick the projectile's appearance.
type Throw struct {
	Visual string
}

// WeaponItem carries a weapon that is equipped when the item is activated.
type WeaponItem struct {
	Weapon Weapon
}

func (IncreaseSpeed) effect() {}
func (Heal) effect()          {}
func (Throw) effect()         {}
func (WeaponItem) effect()    {}
