package system

import (
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"
	"chunk-roguelike/internal/logger"
	"chunk-roguelike/internal/msglog"

	"github.com/sirupsen/logrus"
)

// Command is an abstract player input.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdLayerUp
	CmdLayerDown
	CmdInteract
	CmdWait
)

// Delta returns the displacement a movement command asks for.
func (c Command) Delta() (dx, dy, dz int) {
	switch c {
	case CmdUp:
		return 0, -1, 0
	case CmdDown:
		return 0, 1, 0
	case CmdLeft:
		return -1, 0, 0
	case CmdRight:
		return 1, 0, 0
	case CmdLayerUp:
		return 0, 0, 1
	case CmdLayerDown:
		return 0, 0, -1
	}
	return 0, 0, 0
}

// UpdateEntity advances one entity. Player-controlled entities follow cmd,
// AI-controlled ones ignore it and use Decide. Both go through Resolve.
func UpdateEntity(actor *entity.Entity, cmd Command, m *gamemap.Map, others []*entity.Entity, sink msglog.Sink) MoveResult {
	if actor.IsDead() {
		return MoveNone
	}
	if !actor.IsPlayer() {
		dx, dy, dz := Decide(actor, m, others)
		return Resolve(actor, dx, dy, dz, m, others, sink)
	}
	if cmd == CmdInteract {
		Interact(actor, m, others, sink)
		return MoveNone
	}
	dx, dy, dz := cmd.Delta()
	return Resolve(actor, dx, dy, dz, m, others, sink)
}

// Tick runs one turn: the player acts on cmd, visibility is recomputed
// around it, every AI entity acts in collection order, and the dead are
// collected last.
func Tick(mgr *entity.Manager, cmd Command, m *gamemap.Map, sink msglog.Sink, fovRange int) []*entity.Entity {
	mgr.ActPlayer(func(self *entity.Entity, others []*entity.Entity) {
		UpdateEntity(self, cmd, m, others, sink)
		UpdateVisibility(self.Position, fovRange, m)
	})
	mgr.ActAI(func(self *entity.Entity, others []*entity.Entity) {
		UpdateEntity(self, CmdNone, m, others, sink)
	})
	dead := mgr.CollectDead()

	logger.Log.WithFields(logrus.Fields{
		"component": "tick",
		"command":   cmd,
		"living":    mgr.CountLiving(),
		"died":      len(dead),
	}).Debug("Tick complete.")
	return dead
}
