package component

import "github.com/oomph-ac/groundwork/player"

// Register registers the components for the given player.
func Register(p *player.Player) {
	p.SetGrounding(NewGroundingComponent(p))
	p.SetInventory(NewInventoryComponent(p))
	p.SetEffects(NewEffectsComponent(p))
	p.SetWeapon(NewWeaponComponent(p))
	p.SetCamera(NewCameraComponent())
	p.SetLocomotion(NewLocomotionComponent(p))
}
