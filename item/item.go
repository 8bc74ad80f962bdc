package item

// Category describes how an item is used once it is in an inventory.
type Category uint8

const (
	CategoryPassive Category = iota
	CategoryActive
	CategoryWeapon
)

// String ...
func (c Category) String() string {
	switch c {
	case CategoryActive:
		return "active"
	case CategoryWeapon:
		return "weapon"
	}
	return "passive"
}

// Item is an immutable record of something that can be picked up and activated. At any time an item is
// either owned by exactly one inventory slot or by the world.
type Item struct {
	Name        string
	Description string
	Category    Category
	Effect      Effect
}

// Consumed returns true if activating the item removes it for good. Weapon items are moved into the
// equipped weapon slot instead.
func (i Item) Consumed() bool {
	_, weapon := i.Effect.(WeaponItem)
	return !weapon
}
