package component

import (
	"github.com/oomph-ac/groundwork/assert"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/oerror"
	"github.com/oomph-ac/groundwork/player"
)

type InventoryComponent struct {
	mPlayer *player.Player

	slots    [game.InventorySize]item.Item
	occupied [game.InventorySize]bool
	selected int
}

func NewInventoryComponent(p *player.Player) *InventoryComponent {
	return &InventoryComponent{mPlayer: p}
}

func (c *InventoryComponent) Add(it item.Item) (int, error) {
	for slot, occupied := range c.occupied {
		if !occupied {
			c.slots[slot], c.occupied[slot] = it, true
			return slot, nil
		}
	}
	return -1, game.ErrInventoryFull
}

func (c *InventoryComponent) Place(slot int, it item.Item) error {
	if slot < 0 || slot >= game.InventorySize {
		return oerror.New(game.ErrorSlotOutOfRange, slot, game.InventorySize)
	}
	if c.occupied[slot] {
		return oerror.New(game.ErrorSlotOccupied, slot)
	}
	c.slots[slot], c.occupied[slot] = it, true
	return nil
}

func (c *InventoryComponent) Remove(slot int) (item.Item, bool) {
	it, ok := c.Slot(slot)
	if !ok {
		return item.Item{}, false
	}
	c.slots[slot], c.occupied[slot] = item.Item{}, false
	return it, true
}

func (c *InventoryComponent) Slot(slot int) (item.Item, bool) {
	if slot < 0 || slot >= game.InventorySize || !c.occupied[slot] {
		return item.Item{}, false
	}
	return c.slots[slot], true
}

func (c *InventoryComponent) Len() int {
	var n int
	for _, occupied := range c.occupied {
		if occupied {
			n++
		}
	}
	return n
}

func (c *InventoryComponent) Selected() int {
	return c.selected
}

func (c *InventoryComponent) SelectNext() {
	c.selected = (c.selected + 1) % game.InventorySize
	c.validateCursor()
}

func (c *InventoryComponent) SelectPrevious() {
	c.selected = (c.selected + game.InventorySize - 1) % game.InventorySize
	c.validateCursor()
}

// UseSelected takes the item out of the selected slot and activates it. Weapons move into the weapon slot,
// every other item is consumed by its effect.
func (c *InventoryComponent) UseSelected(ctx player.Activation) {
	it, ok := c.Remove(c.selected)
	if !ok {
		return
	}
	c.mPlayer.Log().WithField("player", c.mPlayer.Name()).Debugf("using %s from slot %d", it.Name, c.selected)

	if !it.Consumed() {
		c.mPlayer.Weapon().Equip(it.Effect.(item.WeaponItem).Weapon)
		return
	}
	c.mPlayer.Effects().Activate(it.Effect, ctx)
}

func (c *InventoryComponent) View() player.InventoryView {
	view := player.InventoryView{
		Slots:    c.slots,
		Occupied: c.occupied,
		Selected: c.selected,
	}
	if wc := c.mPlayer.Weapon(); wc != nil {
		view.Weapon, view.WeaponEquipped = wc.Equipped()
	}
	return view
}

func (c *InventoryComponent) validateCursor() {
	assert.IsTrue(c.selected >= 0 && c.selected < game.InventorySize, game.ErrorInternalCursorOutOfRange, c.selected, game.InventorySize)
}
