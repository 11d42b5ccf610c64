package system

import (
	"fmt"

	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"
	"chunk-roguelike/internal/msglog"
)

// MoveResult describes the outcome of a Resolve call.
type MoveResult uint8

const (
	MoveNone    MoveResult = iota // zero delta
	MoveOK                        // position updated
	MoveBlocked                   // unwalkable or unloaded destination
	MoveAttack                    // bumped a living entity
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveAttack:
		return "attack"
	default:
		return "none"
	}
}

// Resolve moves actor by (dx, dy, dz) or, when a living entity from others
// stands on the destination, runs the actor's actions against it in place.
// Facing follows the planar delta before the collision check. The
// destination's surroundings are loaded before its walkability is tested.
func Resolve(actor *entity.Entity, dx, dy, dz int, m *gamemap.Map, others []*entity.Entity, sink msglog.Sink) MoveResult {
	if dx == 0 && dy == 0 && dz == 0 {
		return MoveNone
	}
	actor.Facing = component.Facing(actor.Facing, dx, dy)
	dest := actor.Position.Add(dx, dy, dz)

	if occupant(others, dest) != nil {
		attack(actor, dest, others, sink)
		return MoveAttack
	}

	m.LoadAround(dest, gamemap.LoadDistance)
	if !m.IsWalkable(dest) {
		return MoveBlocked
	}
	actor.Position = dest
	return MoveOK
}

// occupant returns the living entity standing on p, or nil.
func occupant(others []*entity.Entity, p component.Position) *entity.Entity {
	for _, e := range others {
		if e.Position == p && !e.IsDead() {
			return e
		}
	}
	return nil
}

// Interact runs the structure on the tile the actor faces. It reports
// whether there was anything to interact with.
func Interact(actor *entity.Entity, m *gamemap.Map, others []*entity.Entity, sink msglog.Sink) bool {
	front := actor.Facing.InFront(actor.Position)
	tile, ok := m.Tile(front)
	if !ok || tile.Structure == nil {
		return false
	}

	switch s := tile.Structure.(type) {
	case *gamemap.Door:
		if s.Toggle() {
			sink.Push("open door")
		} else {
			sink.Push("close door")
		}
	case *gamemap.Chest:
		if s.Opened && s.Contents.Len() == 0 {
			sink.Push("the chest is empty")
			return true
		}
		s.Opened = true
		sink.Push("open the chest")
		for s.Contents.Len() > 0 {
			it, _ := s.Contents.Remove(0)
			actor.Inventory.Add(it)
			sink.Push(fmt.Sprintf("%s takes %s", actor.Symbol(), it.Name))
		}
	case *gamemap.Stairs:
		if Resolve(actor, 0, 0, s.DZ(), m, others, sink) == MoveOK {
			sink.Push(fmt.Sprintf("%s takes the stairs to layer %d", actor.Symbol(), actor.Position.Z))
		}
	default:
		sink.Push(fmt.Sprintf("nothing to do with the %s", s.Name()))
	}
	return true
}
