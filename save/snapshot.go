package save

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/internal"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/oerror"
	"github.com/oomph-ac/groundwork/player"
)

// Version is the snapshot format written by this package.
const Version = 2

// Snapshot is the persisted form of a player's inventory and stats.
type Snapshot struct {
	Version int    `json:"version"`
	Player  string `json:"player"`

	Health float32 `json:"health"`
	// Speed is the speed of the player without any of its timed effects.
	Speed   float32       `json:"speed"`
	Effects []TimedEffect `json:"effects,omitempty"`

	Slots    []Slot             `json:"slots"`
	Selected int                `json:"selected"`
	Weapon   *item.WeaponRecord `json:"weapon,omitempty"`
}

// Slot is an occupied inventory slot.
type Slot struct {
	Slot int         `json:"slot"`
	Item item.Record `json:"item"`
}

// TimedEffect is a speed effect that was active when the snapshot was taken.
type TimedEffect struct {
	Amount    float32       `json:"amount"`
	Remaining time.Duration `json:"remaining"`
}

// Capture returns a snapshot of the player passed.
func Capture(p *player.Player) Snapshot {
	var s Snapshot
	p.WithLock(func(p *player.Player) {
		s = SnapshotOf(p.Name(), p.Inventory().View(), *p.Stats(), p.Effects().Active())
	})
	return s
}

// SnapshotOf returns a snapshot of the inventory view, stats and active timed effects passed. The amounts
// of the active effects are taken off the saved speed, so that restoring the effects adds them back.
func SnapshotOf(name string, view player.InventoryView, stats player.Stats, active []player.TimedEffect) Snapshot {
	s := Snapshot{
		Version:  Version,
		Player:   name,
		Health:   stats.Health,
		Speed:    stats.Speed,
		Selected: view.Selected,
	}
	for _, e := range active {
		s.Speed -= e.Amount
		s.Effects = append(s.Effects, TimedEffect{Amount: e.Amount, Remaining: e.Remaining})
	}
	for slot, it := range view.Slots {
		if view.Occupied[slot] {
			s.Slots = append(s.Slots, Slot{Slot: slot, Item: item.RecordOf(it)})
		}
	}
	if view.WeaponEquipped {
		w := item.WeaponRecordOf(view.Weapon)
		s.Weapon = &w
	}
	return s
}

// Restore fills an empty player with the contents of the snapshot. Every item is put back into the slot
// it was saved from, and every timed effect is activated again for the time it had left.
func (s Snapshot) Restore(p *player.Player) error {
	if s.Version != Version {
		return oerror.New("unsupported snapshot version %d", s.Version)
	}
	if s.Selected < 0 || s.Selected >= game.InventorySize {
		return oerror.New(game.ErrorInternalCursorOutOfRange, s.Selected, game.InventorySize)
	}
	var taken [game.InventorySize]bool
	items := make([]item.Item, 0, len(s.Slots))
	for _, slot := range s.Slots {
		if slot.Slot < 0 || slot.Slot >= game.InventorySize {
			return oerror.New(game.ErrorSlotOutOfRange, slot.Slot, game.InventorySize)
		}
		if taken[slot.Slot] {
			return oerror.New(game.ErrorSlotOccupied, slot.Slot)
		}
		taken[slot.Slot] = true

		it, err := slot.Item.Item()
		if err != nil {
			return fmt.Errorf("slot %d: %w", slot.Slot, err)
		}
		items = append(items, it)
	}
	for _, e := range s.Effects {
		if e.Remaining <= 0 {
			return oerror.New("timed effect with no time left: %v", e.Remaining)
		}
	}

	var restoreErr error
	p.WithLock(func(p *player.Player) {
		inv := p.Inventory()
		if inv.Len() != 0 {
			restoreErr = oerror.New("cannot restore into a non-empty inventory")
			return
		}
		for i, it := range items {
			if err := inv.Place(s.Slots[i].Slot, it); err != nil {
				restoreErr = err
				return
			}
		}
		for inv.Selected() != s.Selected {
			inv.SelectNext()
		}
		if s.Weapon != nil {
			p.Weapon().Equip(s.Weapon.Weapon())
		}

		stats := p.Stats()
		stats.Health, stats.Speed = s.Health, s.Speed
		ctx := p.Activation()
		for _, e := range s.Effects {
			p.Effects().Activate(item.IncreaseSpeed{Amount: e.Amount, Duration: e.Remaining}, ctx)
		}
	})
	return restoreErr
}

// Encode returns the snapshot as zstd compressed JSON.
func Encode(s Snapshot) ([]byte, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	if err := json.NewEncoder(buf).Encode(s); err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(buf.Bytes(), nil), nil
}

// Decode decodes a snapshot produced by Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return s, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return s, fmt.Errorf("zstd decode: %w", err)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("json decode: %w", err)
	}
	return s, nil
}

// Write writes the snapshot to the file at path, creating parent directories as needed.
func Write(path string, s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(enc)
	if err := json.NewEncoder(bw).Encode(s); err != nil {
		_ = enc.Close()
		return fmt.Errorf("json encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// Read reads a snapshot written by Write.
func Read(path string) (Snapshot, error) {
	var s Snapshot
	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return s, err
	}
	defer dec.Close()

	if err := json.NewDecoder(bufio.NewReader(dec)).Decode(&s); err != nil {
		return s, fmt.Errorf("json decode: %w", err)
	}
	return s, nil
}
