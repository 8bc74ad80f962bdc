package player

import "github.com/oomph-ac/groundwork/item"

// WeaponComponent tracks the equipped weapon of a player and its durability.
type WeaponComponent interface {
	// Equip equips the weapon passed, replacing any weapon already equipped.
	Equip(w item.Weapon)
	// Melee uses the equipped weapon once. A weapon that reaches zero durability is unequipped in the
	// same call. False is returned if no weapon is equipped.
	Melee() bool
	// Check unequips the equipped weapon if its durability is zero.
	Check()
	// Equipped returns the equipped weapon, if any.
	Equipped() (item.Weapon, bool)
}

func (p *Player) SetWeapon(c WeaponComponent) {
	p.weapon = c
}

func (p *Player) Weapon() WeaponComponent {
	return p.weapon
}
