package component

import (
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/player"
	"github.com/oomph-ac/groundwork/settings"
)

// WeaponComponent holds the equipped weapon of a player. A weapon is unequipped in the same call that
// brings its durability to zero, so a broken weapon is never observable as equipped.
type WeaponComponent struct {
	mPlayer *player.Player

	weapon   item.Weapon
	equipped bool
}

// NewWeaponComponent returns a weapon component with no weapon equipped.
func NewWeaponComponent(p *player.Player) *WeaponComponent {
	return &WeaponComponent{mPlayer: p}
}

// Equip ...
func (c *WeaponComponent) Equip(w item.Weapon) {
	if c.equipped {
		c.release()
	}
	c.weapon, c.equipped = w, true
}

// release gets rid of the equipped weapon according to the replaced weapon policy.
func (c *WeaponComponent) release() {
	log := c.mPlayer.Log().WithField("player", c.mPlayer.Name())
	if c.mPlayer.Settings().Inventory.ReplacedWeapon == settings.ReplacedWeaponDiscard {
		log.Debugf("discarding replaced weapon %s", c.weapon.Name)
		return
	}

	log.Debugf("dropping replaced weapon %s", c.weapon.Name)
	c.mPlayer.Emit(event.DropItem{
		Owner: c.mPlayer.ID(),
		Item: item.Item{
			Name:        c.weapon.Name,
			Description: c.weapon.Description,
			Category:    item.CategoryWeapon,
			Effect:      item.WeaponItem{Weapon: c.weapon},
		},
		Position: c.mPlayer.Pose().Feet(),
	})
}

// Melee ...
func (c *WeaponComponent) Melee() bool {
	if !c.equipped {
		return false
	}
	c.weapon.Use()
	c.Check()
	return true
}

// Check ...
func (c *WeaponComponent) Check() {
	if !c.equipped || !c.weapon.Broken() {
		return
	}
	c.mPlayer.Emit(event.WeaponBroken{Owner: c.mPlayer.ID(), Weapon: c.weapon})
	c.weapon, c.equipped = item.Weapon{}, false
}

// Equipped ...
func (c *WeaponComponent) Equipped() (item.Weapon, bool) {
	return c.weapon, c.equipped
}
