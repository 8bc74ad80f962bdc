package player

import (
	"encoding/binary"
	"math"

	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/item"
	"github.com/zeebo/xxh3"
)

// InventoryView is a read-only copy of an inventory handed to the host's UI.
type InventoryView struct {
	// Slots holds the item of every slot. Occupied tells which of them hold an item.
	Slots    [game.InventorySize]item.Item
	Occupied [game.InventorySize]bool
	Selected int

	Weapon         item.Weapon
	WeaponEquipped bool
}

// Items returns the items in the occupied slots in slot order.
func (v InventoryView) Items() []item.Item {
	items := make([]item.Item, 0, len(v.Slots))
	for slot, it := range v.Slots {
		if v.Occupied[slot] {
			items = append(items, it)
		}
	}
	return items
}

// Digest returns a hash of the view. Two views with the same contents always have the same digest, so the
// UI can skip redrawing an unchanged inventory.
func (v InventoryView) Digest() uint64 {
	h := xxh3.New()
	var buf [8]byte

	writeUint := func(n uint64) {
		binary.LittleEndian.PutUint64(buf[:], n)
		_, _ = h.Write(buf[:])
	}
	writeString := func(s string) {
		writeUint(uint64(len(s)))
		_, _ = h.WriteString(s)
	}
	writeRecord := func(r item.Record) {
		writeString(r.Name)
		writeString(r.Category)
		writeString(r.Effect.Kind)
		writeUint(uint64(math.Float32bits(r.Effect.Amount)))
		writeUint(math.Float64bits(r.Effect.Duration))
		writeString(r.Effect.Visual)
		if w := r.Effect.Weapon; w != nil {
			writeString(w.Name)
			writeUint(uint64(w.Durability))
		}
	}

	for slot, it := range v.Slots {
		if !v.Occupied[slot] {
			writeUint(0)
			continue
		}
		writeUint(1)
		writeRecord(item.RecordOf(it))
	}
	writeUint(uint64(v.Selected))
	if v.WeaponEquipped {
		writeUint(1)
		writeString(v.Weapon.Name)
		writeUint(uint64(v.Weapon.Durability))
	} else {
		writeUint(0)
	}
	return h.Sum64()
}
