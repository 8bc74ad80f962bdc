package component

import (
	"github.com/oomph-ac/groundwork/game"
	"github.com/oomph-ac/groundwork/player"
	"github.com/oomph-ac/groundwork/settings"
	"github.com/oomph-ac/groundwork/world"
)

// probeFunc measures the distance from an actor's feet down to a surface.
type probeFunc func(pose player.Pose, s world.Surface, cfg probeConfig) (float32, bool)

type probeConfig struct {
	step, epsilon float32
}

var probes = map[string]probeFunc{
	settings.ProbeGrid: func(pose player.Pose, s world.Surface, cfg probeConfig) (float32, bool) {
		return game.MultiRayIntersectFromBox(pose.Position, pose.HalfExtents, s.Center, s.HalfExtents, cfg.step, game.Down)
	},
	settings.ProbeSlab: func(pose player.Pose, s world.Surface, cfg probeConfig) (float32, bool) {
		return game.SlabRayIntersectAABB(pose.Position, pose.HalfExtents, s.Center, s.HalfExtents, game.Down, cfg.epsilon)
	},
}

// GroundingComponent recomputes whether a player stands on a ground surface every tick, purely from the
// player's pose and the surfaces of the world.
type GroundingComponent struct {
	mPlayer *player.Player

	probe     probeFunc
	cfg       probeConfig
	rayLength float32

	state   player.GroundState
	landed  bool
	jumping bool
}

// NewGroundingComponent returns a grounding component using the probe configured in the player's settings.
func NewGroundingComponent(p *player.Player) *GroundingComponent {
	s := p.Settings().Grounding
	probe, ok := probes[s.Probe]
	if !ok {
		p.Log().Warnf("unknown grounding probe %q, falling back to %q", s.Probe, settings.ProbeGrid)
		probe = probes[settings.ProbeGrid]
	}
	return &GroundingComponent{
		mPlayer:   p,
		probe:     probe,
		cfg:       probeConfig{step: float32(s.Step), epsilon: float32(s.Epsilon)},
		rayLength: float32(s.RayLength),
	}
}

// Update ...
func (c *GroundingComponent) Update(pose player.Pose, surfaces []world.Surface) player.GroundState {
	next := player.Airborne
	for _, s := range surfaces {
		if s.Kind != world.SurfaceGround {
			continue
		}
		if dist, ok := c.probe(pose, s, c.cfg); game.Grounding(dist, ok, c.rayLength) {
			next = player.Grounded
			break
		}
	}

	c.landed = c.state == player.Airborne && next == player.Grounded
	if c.landed {
		c.jumping = false
	}
	c.state = next
	return next
}

// State ...
func (c *GroundingComponent) State() player.GroundState {
	return c.state
}

// Grounded ...
func (c *GroundingComponent) Grounded() bool {
	return c.state == player.Grounded
}

// Landed ...
func (c *GroundingComponent) Landed() bool {
	return c.landed
}

// Jumping ...
func (c *GroundingComponent) Jumping() bool {
	return c.jumping
}

// SetJumping ...
func (c *GroundingComponent) SetJumping(jumping bool) {
	c.jumping = jumping
}
