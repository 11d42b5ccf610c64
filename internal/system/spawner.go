package system

import (
	"fmt"
	"math/rand"
	"time"

	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"
	"chunk-roguelike/internal/logger"
	"chunk-roguelike/internal/msglog"

	"github.com/sirupsen/logrus"
)

// SpawnWeight is the relative chance of a kind being picked.
type SpawnWeight struct {
	Kind   entity.Kind
	Weight float64
}

// SpawnerConfig controls how often, how many and where entities appear.
type SpawnerConfig struct {
	Interval time.Duration
	// MaxEntities caps the number of living non-player entities.
	MaxEntities int
	Radius      int
	// AroundPlayer spawns around the player instead of the world origin.
	AroundPlayer bool
	Weights      []SpawnWeight
}

// DefaultSpawnerConfig returns the stock spawn settings.
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Interval:     3 * time.Second,
		MaxEntities:  10,
		Radius:       20,
		AroundPlayer: true,
		Weights: []SpawnWeight{
			{Kind: entity.Human, Weight: 0.1},
			{Kind: entity.Sheep, Weight: 0.5},
			{Kind: entity.Dragon, Weight: 0.001},
		},
	}
}

// Spawner periodically adds AI entities near the player.
type Spawner struct {
	Config    SpawnerConfig
	LastSpawn time.Time
	rng       *rand.Rand
}

// NewSpawner creates a spawner whose cooldown starts at now.
func NewSpawner(cfg SpawnerConfig, rng *rand.Rand, now time.Time) *Spawner {
	return &Spawner{Config: cfg, LastSpawn: now, rng: rng}
}

// pickKind samples a kind from the configured weights.
func (s *Spawner) pickKind() (entity.Kind, bool) {
	total := 0.0
	for _, w := range s.Config.Weights {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		return 0, false
	}
	r := s.rng.Float64() * total
	for _, w := range s.Config.Weights {
		if w.Weight <= 0 {
			continue
		}
		if r < w.Weight {
			return w.Kind, true
		}
		r -= w.Weight
	}
	return s.Config.Weights[len(s.Config.Weights)-1].Kind, true
}

// TrySpawn makes one spawn attempt once the interval has elapsed since the
// last spawn. A random cell within Radius of the anchor is picked; the
// attempt is dropped when that cell is unwalkable or occupied. A valid cell
// restarts the cooldown, and the entity is only added while the living
// count is under MaxEntities.
func (s *Spawner) TrySpawn(now time.Time, mgr *entity.Manager, m *gamemap.Map, sink msglog.Sink) (*entity.Entity, bool) {
	if now.Sub(s.LastSpawn) < s.Config.Interval {
		return nil, false
	}
	kind, ok := s.pickKind()
	if !ok {
		return nil, false
	}

	var anchor component.Position
	if s.Config.AroundPlayer && mgr.Player() != nil {
		anchor = mgr.Player().Position
	}
	r := max(s.Config.Radius, 0)
	dest := anchor.Add(s.rng.Intn(2*r+1)-r, s.rng.Intn(2*r+1)-r, 0)

	log := logger.Log.WithFields(logrus.Fields{
		"component": "spawner",
		"kind":      kind.String(),
		"pos":       dest,
	})
	if _, taken := mgr.EntityAt(dest); taken || !m.IsWalkable(dest) {
		log.Debug("Spawn skipped: cell unavailable.")
		return nil, false
	}
	s.LastSpawn = now
	if mgr.CountLiving() >= s.Config.MaxEntities {
		log.Debug("Spawn skipped: entity cap reached.")
		return nil, false
	}

	e := entity.NewAI(kind, dest)
	mgr.Add(e)
	sink.Push(fmt.Sprintf("a %s appears", kind.String()))
	log.WithField("entity_id", e.ID).Debug("Entity spawned.")
	return e, true
}
