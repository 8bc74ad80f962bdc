package simulation

import (
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/groundwork/entity"
	"github.com/oomph-ac/groundwork/event"
	"github.com/oomph-ac/groundwork/oerror"
	"github.com/oomph-ac/groundwork/player"
	"github.com/oomph-ac/groundwork/player/component"
	"github.com/oomph-ac/groundwork/settings"
	"github.com/oomph-ac/groundwork/utils"
	"github.com/oomph-ac/groundwork/world"
	"github.com/oomph-ac/groundwork/worker"
	"github.com/sirupsen/logrus"
)

// DropRadius is the pickup radius of items dropped back into the world.
const DropRadius = float32(0.5)

// Simulator advances the gameplay state of a world and its players in fixed steps. The host reports
// collisions and poses, calls Tick once per physics step and carries out the requests in the Result.
type Simulator struct {
	log      *logrus.Logger
	settings settings.Settings
	world    *world.World

	tickMu sync.Mutex
	now    time.Duration

	playersMu sync.RWMutex
	players   *orderedmap.OrderedMap[entity.ID, *player.Player]

	queueMu    sync.Mutex
	collisions *utils.CircularQueue[event.Collision]

	requests *event.Buffer
}

// New returns a simulator for the world passed.
func New(log *logrus.Logger, s settings.Settings, w *world.World) *Simulator {
	return &Simulator{
		log:        log,
		settings:   s,
		world:      w,
		players:    orderedmap.NewOrderedMap[entity.ID, *player.Player](),
		collisions: utils.NewCircularQueue[event.Collision](s.Simulation.CollisionQueueSize, nil),
		requests:   &event.Buffer{},
	}
}

// World returns the world the simulator runs.
func (s *Simulator) World() *world.World {
	return s.world
}

// Now returns the simulation time: the sum of every step passed to Tick.
func (s *Simulator) Now() time.Duration {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()
	return s.now
}

// NewPlayer creates a player with the default components, adds it to the simulation and returns it.
func (s *Simulator) NewPlayer(name string) *player.Player {
	p := player.New(s.log, name, s.settings, s.requests)
	component.Register(p)
	s.AddPlayer(p)
	return p
}

// AddPlayer adds a player created by NewPlayer back to the simulation, for example after it was removed
// with RemovePlayer.
func (s *Simulator) AddPlayer(p *player.Player) {
	s.playersMu.Lock()
	s.players.Set(p.ID(), p)
	s.playersMu.Unlock()
}

// RemovePlayer removes the player with the ID passed from the simulation.
func (s *Simulator) RemovePlayer(id entity.ID) {
	s.playersMu.Lock()
	s.players.Delete(id)
	s.playersMu.Unlock()
}

// Player returns the player with the ID passed.
func (s *Simulator) Player(id entity.ID) (*player.Player, bool) {
	s.playersMu.RLock()
	defer s.playersMu.RUnlock()
	return s.players.Get(id)
}

// Players returns every player in the order they were added.
func (s *Simulator) Players() []*player.Player {
	s.playersMu.RLock()
	defer s.playersMu.RUnlock()
	return s.playerList()
}

func (s *Simulator) playerList() []*player.Player {
	players := make([]*player.Player, 0, s.players.Len())
	for el := s.players.Front(); el != nil; el = el.Next() {
		players = append(players, el.Value)
	}
	return players
}

// PushCollision queues a collision reported by the host. Collisions are handled at the start of the next
// tick. If the queue is full, the oldest collision is dropped.
func (s *Simulator) PushCollision(c event.Collision) {
	s.queueMu.Lock()
	dropped, err := s.collisions.Append(c)
	s.queueMu.Unlock()

	if err != nil {
		s.log.Errorf("unable to queue collision: %v", err)
	} else if dropped {
		s.log.Warnf("collision queue full (%d), dropped oldest collision", s.collisions.Cap())
	}
}

func (s *Simulator) drainCollisions() []event.Collision {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()
	return s.collisions.Drain()
}

// Tick advances the simulation by dt. inputs holds the input of every player for this step; players without
// an entry tick with an empty input.
func (s *Simulator) Tick(dt time.Duration, inputs map[entity.ID]player.Input) Result {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	s.now += dt
	res := Result{Now: s.now}

	for _, c := range s.drainCollisions() {
		s.route(c, &res)
	}

	s.playersMu.RLock()
	players := s.playerList()
	s.playersMu.RUnlock()

	results := make([]player.TickResult, len(players))
	jobs := make([]func(), len(players))
	for i, p := range players {
		i, p := i, p
		in := inputs[p.ID()]
		jobs[i] = func() {
			defer s.recoverPlayer(p)
			results[i] = p.Tick(dt, in, s.world)
		}
	}
	worker.Batch(jobs...)

	for _, r := range results {
		if r.ID != entity.Nil {
			res.Players = append(res.Players, r)
		}
	}

	s.handleRequests(&res)
	res.Despawned = append(res.Despawned, s.world.Projectiles().Sweep(s.now)...)
	return res
}

// route sends a collision to whatever it concerns: projectiles hitting surfaces are destroyed, players
// entering the pickup sensor of an item pick it up and players touching the ground get their fall stopped.
func (s *Simulator) route(c event.Collision, res *Result) {
	if c.Stopped {
		return
	}
	if d, ok := s.world.Projectiles().Collide(c, s.world); ok {
		res.Despawned = append(res.Despawned, d)
		return
	}

	p, other, ok := s.playerOf(c)
	if !ok {
		return
	}
	switch s.world.Kind(other) {
	case entity.KindItem:
		if c.Sensor {
			p.QueuePickup(other)
		}
	case entity.KindGround:
		p.QueueGroundContact()
	}
}

func (s *Simulator) playerOf(c event.Collision) (*player.Player, entity.ID, bool) {
	for _, id := range [2]entity.ID{c.A, c.B} {
		if p, ok := s.Player(id); ok {
			other, _ := c.Other(id)
			return p, other, true
		}
	}
	return nil, entity.Nil, false
}

// handleRequests carries out the requests players emitted during the tick that concern the world, and
// adds all of them to the result.
func (s *Simulator) handleRequests(res *Result) {
	for _, r := range s.requests.Flush() {
		switch r := r.(type) {
		case event.SpawnProjectile:
			r.ID = s.world.Projectiles().Spawn(r, s.now)
			res.Spawned = append(res.Spawned, r)
		case event.DropItem:
			r.ID = s.world.AddItem(r.Item, r.Position, DropRadius)
			res.Dropped = append(res.Dropped, r)
		case event.Despawn:
			res.Despawned = append(res.Despawned, r)
		case event.WeaponBroken:
			res.Broken = append(res.Broken, r)
		default:
			s.log.Warnf("unhandled request %T", r)
		}
	}
}

func (s *Simulator) recoverPlayer(p *player.Player) {
	if err := recover(); err != nil {
		s.log.WithField("player", p.Name()).Errorf("player tick panic: %v", err)
		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("player", p.Name())
			scope.SetTag("player_id", p.ID().String())
		})
		hub.Recover(oerror.New("player tick crashed: %v", err))
		hub.Flush(time.Second * 5)
	}
}
