package entity

import (
	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
)

// Manager owns every entity. The player is kept apart from the other living
// entities; entities that die are moved to the dead list once per tick and
// kept for drawing and lookup.
type Manager struct {
	nextID  ID
	player  *Entity
	living  []*Entity
	dead    []*Entity
	scratch []*Entity
}

// NewManager creates a Manager around the player entity.
func NewManager(player *Entity) *Manager {
	m := &Manager{nextID: 1}
	player.ID = m.mint()
	m.player = player
	return m
}

func (m *Manager) mint() ID {
	id := m.nextID
	m.nextID++
	return id
}

// Add registers a non-player entity and returns its new ID.
func (m *Manager) Add(e *Entity) ID {
	e.ID = m.mint()
	m.living = append(m.living, e)
	return e.ID
}

// Player returns the player entity.
func (m *Manager) Player() *Entity { return m.player }

// Living returns the non-player entities not yet collected as dead, in
// update order. The slice must not be modified.
func (m *Manager) Living() []*Entity { return m.living }

// Dead returns the collected corpses.
func (m *Manager) Dead() []*Entity { return m.dead }

// CountLiving returns how many non-player entities are alive.
func (m *Manager) CountLiving() int {
	n := 0
	for _, e := range m.living {
		if !e.IsDead() {
			n++
		}
	}
	return n
}

// Get returns the entity with the given ID, dead or alive.
func (m *Manager) Get(id ID) (*Entity, bool) {
	if m.player != nil && m.player.ID == id {
		return m.player, true
	}
	for _, e := range m.living {
		if e.ID == id {
			return e, true
		}
	}
	for _, e := range m.dead {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// EntityAt returns the entity at p, checking the player, then living
// entities, then corpses.
func (m *Manager) EntityAt(p component.Position) (*Entity, bool) {
	if e, ok := m.LivingAt(p); ok {
		return e, true
	}
	for _, e := range m.dead {
		if e.Position == p {
			return e, true
		}
	}
	return nil, false
}

// LivingAt returns the player or a not-yet-collected entity standing at p.
func (m *Manager) LivingAt(p component.Position) (*Entity, bool) {
	if m.player != nil && m.player.Position == p {
		return m.player, true
	}
	for _, e := range m.living {
		if e.Position == p {
			return e, true
		}
	}
	return nil, false
}

// othersExcept fills the scratch buffer with the player and every living
// entity except living[skip]. A negative skip excludes only the player.
func (m *Manager) othersExcept(skip int) []*Entity {
	out := m.scratch[:0]
	if skip >= 0 && m.player != nil {
		out = append(out, m.player)
	}
	for i, e := range m.living {
		if i != skip {
			out = append(out, e)
		}
	}
	m.scratch = out
	return out
}

// ActPlayer calls fn with the player and a view of every other entity.
// The view is only valid for the duration of the call.
func (m *Manager) ActPlayer(fn func(self *Entity, others []*Entity)) {
	if m.player == nil {
		return
	}
	fn(m.player, m.othersExcept(-1))
}

// ActAI calls fn for each living non-player entity in collection order,
// with a view of everyone else including the player. Entities that died
// earlier in the tick still act as obstacles but are skipped as actors.
func (m *Manager) ActAI(fn func(self *Entity, others []*Entity)) {
	for i := range m.living {
		self := m.living[i]
		if self.IsDead() {
			continue
		}
		fn(self, m.othersExcept(i))
	}
}

// CollectDead moves every dead entity from the living list to the dead list
// and returns them. It runs once per tick after everyone has acted.
func (m *Manager) CollectDead() []*Entity {
	var collected []*Entity
	kept := m.living[:0]
	for _, e := range m.living {
		if e.IsDead() {
			collected = append(collected, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(m.living[len(kept):])
	m.living = kept
	m.dead = append(m.dead, collected...)
	for _, e := range collected {
		logger.Log.WithFields(logrus.Fields{
			"component": "entity_manager",
			"entity_id": e.ID,
			"kind":      e.Kind.String(),
		}).Debug("Entity moved to dead list.")
	}
	return collected
}
