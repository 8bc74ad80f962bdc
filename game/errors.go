package game

import "github.com/oomph-ac/groundwork/oerror"

const (
	ErrorInventoryFull      = "Inventory is full."
	ErrorUnknownEffect      = "Unknown item effect %v."
	ErrorUnknownItem        = "Unknown item %q."
	ErrorUnknownEntity      = "Unknown entity %v."
	ErrorItemAlreadyClaimed = "Item %v is no longer in the world."
	ErrorSlotOutOfRange     = "Slot %d is out of range [0, %d)."
	ErrorSlotOccupied       = "Slot %d is already occupied."

	ErrorInternalCursorOutOfRange = "Error: Selection cursor %d out of range [0, %d)."
)

// ErrInventoryFull is returned when an item is added to an inventory with no empty slots left.
var ErrInventoryFull = oerror.New(ErrorInventoryFull)
