package item

import (
	"time"

	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/oerror"
)

const (
	EffectKindIncreaseSpeed = "increase_speed"
	EffectKindHeal          = "heal"
	EffectKindThrow         = "throw"
	EffectKindWeapon        = "weapon"
)

// Record is the serialisable form of an Item. It is used both for design-time catalogs and for saved
// inventories.
type Record struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Category    string       `yaml:"category" json:"category"`
	Effect      EffectRecord `yaml:"effect" json:"effect"`
}

// EffectRecord is the serialisable form of an Effect. Kind selects which of the other fields apply.
type EffectRecord struct {
	Kind string `yaml:"kind" json:"kind"`
	// Amount is used by increase_speed and heal.
	Amount float32 `yaml:"amount,omitempty" json:"amount,omitempty"`
	// Duration is the length of an increase_speed effect in seconds.
	Duration float64       `yaml:"duration,omitempty" json:"duration,omitempty"`
	Visual   string        `yaml:"visual,omitempty" json:"visual,omitempty"`
	Weapon   *WeaponRecord `yaml:"weapon,omitempty" json:"weapon,omitempty"`
}

// WeaponRecord is the serialisable form of a Weapon.
type WeaponRecord struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Throwable   bool   `yaml:"throwable" json:"throwable"`
	Durability  uint32 `yaml:"durability" json:"durability"`
}

// RecordOf returns the record describing the item passed.
func RecordOf(i Item) Record {
	r := Record{Name: i.Name, Description: i.Description, Category: i.Category.String()}
	switch e := i.Effect.(type) {
	case IncreaseSpeed:
		r.Effect = EffectRecord{Kind: EffectKindIncreaseSpeed, Amount: e.Amount, Duration: e.Duration.Seconds()}
	case Heal:
		r.Effect = EffectRecord{Kind: EffectKindHeal, Amount: e.Amount}
	case Throw:
		r.Effect = EffectRecord{Kind: EffectKindThrow, Visual: e.Visual}
	case WeaponItem:
		w := WeaponRecordOf(e.Weapon)
		r.Effect = EffectRecord{Kind: EffectKindWeapon, Weapon: &w}
	}
	return r
}

// WeaponRecordOf returns the record describing the weapon passed.
func WeaponRecordOf(w Weapon) WeaponRecord {
	return WeaponRecord{Name: w.Name, Description: w.Description, Throwable: w.Throwable, Durability: w.Durability}
}

// Weapon returns the weapon described by the record.
func (r WeaponRecord) Weapon() Weapon {
	return Weapon{Name: r.Name, Description: r.Description, Throwable: r.Throwable, Durability: r.Durability}
}

// Item decodes the record into an Item. An error is returned if the category or effect kind is unknown,
// or if the effect is missing data it needs.
func (r Record) Item() (Item, error) {
	category, err := parseCategory(r.Category)
	if err != nil {
		return Item{}, err
	}

	i := Item{Name: r.Name, Description: r.Description, Category: category}
	switch r.Effect.Kind {
	case EffectKindIncreaseSpeed:
		if r.Effect.Duration <= 0 {
			return Item{}, oerror.New("item %q: increase_speed needs a positive duration", r.Name)
		}
		i.Effect = IncreaseSpeed{Amount: r.Effect.Amount, Duration: time.Duration(r.Effect.Duration * float64(time.Second))}
	case EffectKindHeal:
		i.Effect = Heal{Amount: r.Effect.Amount}
	case EffectKindThrow:
		i.Effect = Throw{Visual: r.Effect.Visual}
	case EffectKindWeapon:
		if r.Effect.Weapon == nil {
			return Item{}, oerror.New("item %q: weapon effect without a weapon", r.Name)
		}
		i.Effect = WeaponItem{Weapon: r.Effect.Weapon.Weapon()}
	default:
		return Item{}, oerror.New(game.ErrorUnknownEffect, r.Effect.Kind)
	}
	return i, nil
}

func parseCategory(s string) (Category, error) {
	switch s {
	case "", "passive":
		return CategoryPassive, nil
	case "active":
		return CategoryActive, nil
	case "weapon":
		return CategoryWeapon, nil
	}
	return 0, oerror.New("unknown item category %q", s)
}
