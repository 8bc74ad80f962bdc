package save

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/player"
	"github.com/oomph-ac/groundwork/player/component"
	"github.com/oomph-ac/groundwork/settings"
	"github.com/sirupsen/logrus"
)

func newPlayer(t *testing.T) *player.Player {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	p := player.New(log, "tester", settings.DefaultSettings(), nil)
	component.Register(p)
	return p
}

func filledPlayer(t *testing.T) *player.Player {
	t.Helper()
	p := newPlayer(t)
	catalog := item.DefaultCatalog()
	for _, name := range []string{"Stone", "Healing Herb", "Wooden Sword"} {
		it, err := catalog.Item(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := p.Inventory().Add(it); err != nil {
			t.Fatal(err)
		}
	}
	p.Inventory().SelectNext()
	p.Inventory().SelectNext()
	p.Inventory().UseSelected(p.Activation())
	p.Weapon().Melee()
	p.Inventory().SelectPrevious()
	return p
}

func TestEncodeDecodeRestore(t *testing.T) {
	src := filledPlayer(t)
	snap := Capture(src)
	if len(snap.Slots) != 2 || snap.Weapon == nil || snap.Weapon.Durability != 4 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	data, err := Encode(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	dst := newPlayer(t)
	if err := decoded.Restore(dst); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if src.View().Digest() != dst.View().Digest() {
		t.Fatalf("expected the restored inventory to match:\n%+v\n%+v", src.View(), dst.View())
	}
	if err := decoded.Restore(dst); err == nil {
		t.Fatal("expected restoring into a filled inventory to fail")
	}
}

func TestWriteRead(t *testing.T) {
	src := filledPlayer(t)
	snap := Capture(src)

	path := filepath.Join(t.TempDir(), "saves", "tester.json.zst")
	if err := Write(path, snap); err != nil {
		t.Fatalf("write: %v", err)
	}
	read, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if read.Player != "tester" || read.Selected != snap.Selected || len(read.Slots) != len(snap.Slots) {
		t.Fatalf("expected %+v, got %+v", snap, read)
	}
	if _, err := Read(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected an error reading a missing snapshot")
	}
}

func TestRestoreKeepsSlotIndices(t *testing.T) {
	src := newPlayer(t)
	catalog := item.DefaultCatalog()
	for _, name := range []string{"Stone", "Healing Herb", "Stone"} {
		it, err := catalog.Item(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := src.Inventory().Add(it); err != nil {
			t.Fatal(err)
		}
	}
	src.Inventory().Remove(0)
	src.Inventory().SelectNext()
	src.Inventory().SelectNext()

	data, err := Encode(Capture(src))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	snap, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	dst := newPlayer(t)
	if err := snap.Restore(dst); err != nil {
		t.Fatalf("restore: %v", err)
	}

	if _, ok := dst.Inventory().Slot(0); ok {
		t.Fatal("expected slot 0 to stay empty")
	}
	selected := dst.Inventory().Selected()
	if it, ok := dst.Inventory().Slot(selected); selected != 2 || !ok || it.Name != "Stone" {
		t.Fatalf("expected the cursor on the stone in slot 2, got slot %d holding %q (ok=%v)", selected, it.Name, ok)
	}
	if src.View().Digest() != dst.View().Digest() {
		t.Fatalf("expected the restored inventory to match:\n%+v\n%+v", src.View(), dst.View())
	}
}

func TestRestoreRevertsActiveBoost(t *testing.T) {
	src := newPlayer(t)
	boost, err := item.DefaultCatalog().Item("Increase Speed")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.Inventory().Add(boost); err != nil {
		t.Fatal(err)
	}
	src.Inventory().UseSelected(src.Activation())
	src.Effects().Tick(4 * time.Second)

	snap := Capture(src)
	if snap.Speed != 10 || len(snap.Effects) != 1 || snap.Effects[0].Remaining != 6*time.Second {
		t.Fatalf("expected base speed 10 and one effect with 6s left, got %+v", snap)
	}
	data, err := Encode(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	dst := newPlayer(t)
	if err := decoded.Restore(dst); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if dst.Stats().Speed != 20 {
		t.Fatalf("expected the boost to be active after restoring, got speed %v", dst.Stats().Speed)
	}
	dst.Effects().Tick(5 * time.Second)
	if dst.Stats().Speed != 20 {
		t.Fatalf("expected the boost to keep its remaining time, got speed %v", dst.Stats().Speed)
	}
	dst.Effects().Tick(time.Second)
	if dst.Stats().Speed != 10 || len(dst.Effects().Active()) != 0 {
		t.Fatalf("expected speed to revert to exactly 10, got %v", dst.Stats().Speed)
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	p := newPlayer(t)
	if err := (Snapshot{Version: 99}).Restore(p); err == nil {
		t.Fatal("expected an unknown version to be rejected")
	}
	if err := (Snapshot{Version: Version, Selected: 7}).Restore(p); err == nil {
		t.Fatal("expected an out of range selection to be rejected")
	}
	bad := Snapshot{Version: Version, Slots: []Slot{{Item: item.Record{Name: "x", Effect: item.EffectRecord{Kind: "teleport"}}}}}
	if err := bad.Restore(p); err == nil {
		t.Fatal("expected an unknown effect to be rejected")
	}
	herb := item.Record{Name: "Herb", Effect: item.EffectRecord{Kind: item.EffectKindHeal, Amount: 1}}
	twice := Snapshot{Version: Version, Slots: []Slot{{Slot: 1, Item: herb}, {Slot: 1, Item: herb}}}
	if err := twice.Restore(p); err == nil {
		t.Fatal("expected a slot saved twice to be rejected")
	}
	outside := Snapshot{Version: Version, Slots: []Slot{{Slot: 9, Item: herb}}}
	if err := outside.Restore(p); err == nil {
		t.Fatal("expected an out of range slot to be rejected")
	}
	expired := Snapshot{Version: Version, Effects: []TimedEffect{{Amount: 10}}}
	if err := expired.Restore(p); err == nil {
		t.Fatal("expected an effect with no time left to be rejected")
	}
	if p.Inventory().Len() != 0 {
		t.Fatal("expected rejected snapshots to leave the player untouched")
	}
}
