package item

// Weapon is a melee weapon. Every use wears it down by one point of durability, and it breaks once the
// durability reaches zero.
type Weapon struct {
	Name        string
	Description string
	Throwable   bool
	Durability  uint32
}

// Use wears the weapon down by one point of durability. Durability never drops below zero.
func (w *Weapon) Use() {
	if w.Durability > 0 {
		w.Durability--
	}
}

// Broken returns true if the weapon has no durability left.
func (w Weapon) Broken() bool {
	return w.Durability == 0
}
