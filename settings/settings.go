package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/oomph-ac/groundwork/game"
	"github.com/pelletier/go-toml"
)

const (
	ProbeGrid = "grid"
	ProbeSlab = "slab"

	ReplacedWeaponDrop    = "drop"
	ReplacedWeaponDiscard = "discard"
)

// Settings contains every tunable of the gameplay core.
type Settings struct {
	Grounding struct {
		// Probe is the grounding probe used, either "grid" or "slab".
		Probe     string
		RayLength float64
		// Step is the sample spacing of the grid probe.
		Step    float64
		Epsilon float64
	}
	Movement struct {
		BaseSpeed    float64
		JumpVelocity float64
	}
	Inventory struct {
		// ReplacedWeapon decides what happens to an equipped weapon when another one is equipped,
		// either "drop" or "discard".
		ReplacedWeapon string
	}
	Throw struct {
		Speed           float64
		VerticalOffset  float64
		LifetimeSeconds float64
	}
	Simulation struct {
		CollisionQueueSize int
		TickRate           int
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Grounding.Probe = ProbeGrid
	settings.Grounding.RayLength = float64(game.RayLength)
	settings.Grounding.Step = float64(game.ProbeStep)
	settings.Grounding.Epsilon = float64(game.SlabEpsilon)

	settings.Movement.BaseSpeed = float64(game.DefaultMovementSpeed)
	settings.Movement.JumpVelocity = float64(game.DefaultJumpVelocity)

	settings.Inventory.ReplacedWeapon = ReplacedWeaponDrop

	settings.Throw.Speed = float64(game.ThrowSpeed)
	settings.Throw.VerticalOffset = float64(game.ThrowVerticalOffset)
	settings.Throw.LifetimeSeconds = game.ProjectileLifetime.Seconds()

	settings.Simulation.CollisionQueueSize = 256
	settings.Simulation.TickRate = 60
	return settings
}

// Validate returns an error if any of the settings hold a value the core cannot run with.
func (s Settings) Validate() error {
	switch s.Grounding.Probe {
	case ProbeGrid, ProbeSlab:
	default:
		return fmt.Errorf("unknown grounding probe %q", s.Grounding.Probe)
	}
	if s.Grounding.RayLength < 0 || s.Grounding.RayLength > float64(game.PlayerHalfHeight) {
		return fmt.Errorf("grounding ray length must be within [0, %v], got %v", game.PlayerHalfHeight, s.Grounding.RayLength)
	}
	if s.Grounding.Step < float64(game.MinGroundingStep) {
		return fmt.Errorf("grounding step must be at least %v, got %v", game.MinGroundingStep, s.Grounding.Step)
	}
	switch s.Inventory.ReplacedWeapon {
	case ReplacedWeaponDrop, ReplacedWeaponDiscard:
	default:
		return fmt.Errorf("unknown replaced weapon policy %q", s.Inventory.ReplacedWeapon)
	}
	if s.Throw.LifetimeSeconds <= 0 {
		return fmt.Errorf("projectile lifetime must be positive, got %v", s.Throw.LifetimeSeconds)
	}
	if s.Simulation.CollisionQueueSize <= 0 {
		return fmt.Errorf("collision queue size must be positive, got %d", s.Simulation.CollisionQueueSize)
	}
	if s.Simulation.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", s.Simulation.TickRate)
	}
	return nil
}

// ProjectileLifetime returns the configured projectile lifetime.
func (s Settings) ProjectileLifetime() time.Duration {
	return time.Duration(s.Throw.LifetimeSeconds * float64(time.Second))
}

// TickDuration returns the length of a single simulation step at the configured tick rate.
func (s Settings) TickDuration() time.Duration {
	return time.Second / time.Duration(s.Simulation.TickRate)
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err = settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %v", err)
	}
	return settings, nil
}
