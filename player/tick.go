package player

import (
	"errors"
	"time"

	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/world"
	"github.com/sirupsen/logrus"
)

// World is the part of the world a player needs while it is ticked.
type World interface {
	// GroundSurfaces returns the surfaces that take part in grounding.
	GroundSurfaces() []world.Surface
	// Transfer moves a world item out of the world if f returns no error.
	Transfer(id entity.ID, f func(it item.Item) error) error
}

// Tick runs a single simulation step of dt for the player. The player's mutex is held for the whole tick.
func (p *Player) Tick(dt time.Duration, in Input, w World) TickResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	if in.Pose != nil {
		p.pose = *in.Pose
	}
	res := TickResult{ID: p.id}

	res.PickedUp = p.claimPickups(w)

	// Grounding always runs before locomotion, so a jump in this tick sees this tick's ground state.
	res.Ground = p.grounding.Update(p.pose, w.GroundSurfaces())
	res.ZeroVerticalVelocity = p.grounding.Landed() || (p.groundContact && res.Ground == Grounded)
	p.groundContact = false

	res.Displacement = p.locomotion.Move(in.Move, p.stats.Speed, dt)
	if in.Jump {
		if v, ok := p.locomotion.Jump(); ok {
			res.JumpVelocity = v
		}
	}

	// Effects advance before this tick's input, so an effect activated now first counts down next tick.
	p.effects.Tick(dt)
	p.handleInput(in, &res)
	p.weapon.Check()

	res.Stats = p.stats
	res.Inventory = p.inventory.View()
	digest := res.Inventory.Digest()
	res.InventoryChanged = digest != p.lastDigest
	p.lastDigest = digest
	return res
}

func (p *Player) handleInput(in Input, res *TickResult) {
	if in.Look[0] != 0 || in.Look[1] != 0 {
		p.camera.Rotate(in.Look[0], in.Look[1])
	}
	if in.ToggleCamera {
		p.camera.ToggleMode()
	}
	if in.SelectNext {
		p.inventory.SelectNext()
	}
	if in.SelectPrevious {
		p.inventory.SelectPrevious()
	}
	if in.UseSelected {
		p.inventory.UseSelected(p.Activation())
	}
	if in.Melee {
		res.MeleeUsed = p.weapon.Melee()
	}
}

// claimPickups moves every queued world item into the inventory. Items that do not fit stay in the world.
func (p *Player) claimPickups(w World) []entity.ID {
	if len(p.pickups) == 0 {
		return nil
	}

	var claimed []entity.ID
	for _, id := range p.pickups {
		err := w.Transfer(id, func(it item.Item) error {
			_, err := p.inventory.Add(it)
			return err
		})
		switch {
		case err == nil:
			claimed = append(claimed, id)
			p.Emit(event.Despawn{ID: id, Reason: event.DespawnPickup})
		case errors.Is(err, game.ErrInventoryFull):
			p.log.WithField("player", p.name).Debugf("cannot pick up %v: %v", id, err)
		default:
			p.log.WithFields(logrus.Fields{"player": p.name, "item": id}).Debugf("pickup failed: %v", err)
		}
	}
	p.pickups = p.pickups[:0]
	return claimed
}
