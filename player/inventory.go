package player

import "github.com/oomph-ac/groundwork/item"

// InventoryComponent holds the items of a player: a fixed amount of general slots with a selection cursor,
// and a separately equipped weapon.
type InventoryComponent interface {
	// Add places the item in the first empty slot and returns the slot. If every slot is occupied,
	// game.ErrInventoryFull is returned and the item stays with the caller.
	Add(it item.Item) (int, error)
	// Place puts the item into the slot passed. An error is returned if the slot is out of range or
	// already occupied.
	Place(slot int, it item.Item) error
	// Remove takes the item out of the slot passed. False is returned if the slot is empty or out of range.
	Remove(slot int) (item.Item, bool)
	// Slot returns the item in the slot passed. False is returned if the slot is empty or out of range.
	Slot(slot int) (item.Item, bool)
	// Len returns the amount of occupied slots.
	Len() int

	// Selected returns the slot the selection cursor points at.
	Selected() int
	SelectNext()
	SelectPrevious()
	// UseSelected activates the item in the selected slot. Consumable items are removed, weapons are
	// equipped. Nothing happens if the selected slot is empty.
	UseSelected(ctx Activation)

	// View returns a read-only copy of the inventory.
	View() InventoryView
}

func (p *Player) SetInventory(c InventoryComponent) {
	p.inventory = c
}

func (p *Player) Inventory() InventoryComponent {
	return p.inventory
}
