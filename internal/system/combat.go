package system

import (
	"fmt"

	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/logger"
	"chunk-roguelike/internal/msglog"

	"github.com/sirupsen/logrus"
)

// ApplyAction applies a to every living entity in others that the action
// covers around target. Healing actions restore hp, every other type deals
// Damage(a, source). It returns the entities that died from this action.
// Entities already dead are skipped, so a death is only reported once.
func ApplyAction(a entity.Action, source *entity.Entity, target component.Position, others []*entity.Entity, sink msglog.Sink) []*entity.Entity {
	var killed []*entity.Entity
	for _, victim := range others {
		if victim == source || victim.IsDead() || !a.Covers(target, victim.Position) {
			continue
		}
		if a.Type() == entity.Healing {
			healed := victim.Stats.Heal(entity.Damage(a, source))
			sink.Push(fmt.Sprintf("%s heals %s (+%d PV)", source.Symbol(), victim.Symbol(), healed))
			continue
		}
		dealt := victim.TakeDamage(entity.Damage(a, source))
		suffix := ""
		if victim.IsDead() {
			suffix = " and it died"
			killed = append(killed, victim)
		}
		sink.Push(fmt.Sprintf("%s attacks %s (-%d PV)%s", source.Symbol(), victim.Symbol(), dealt, suffix))
	}
	return killed
}

// attack runs every action of actor against target in order. Each action
// pays its mana cost first; actions the actor cannot afford or whose range
// does not reach target are skipped. XP is granted for every kill.
func attack(actor *entity.Entity, target component.Position, others []*entity.Entity, sink msglog.Sink) {
	for _, a := range actor.Actions {
		if !entity.InReach(a, actor.Position, target) {
			continue
		}
		if !actor.Stats.SpendMana(a.ManaCost()) {
			continue
		}
		for _, victim := range ApplyAction(a, actor, target, others, sink) {
			sink.Push(fmt.Sprintf("%d xp needed for next level", actor.Level.XPToNextLevel()))
			GainXP(actor, victim.XPDrop, sink)
		}
	}
}

// GainXP feeds xp through the actor's level manager and reports the gain
// and any level reached.
func GainXP(actor *entity.Entity, xp int, sink msglog.Sink) int {
	levels := actor.Level.AddXP(xp, &actor.Stats)
	sink.Push(fmt.Sprintf("%s gained %d XP", actor.Symbol(), xp))
	if levels > 0 {
		sink.Push(fmt.Sprintf("%s reached level %d", actor.Symbol(), actor.Level.Level))
		logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"entity_id": actor.ID,
			"level":     actor.Level.Level,
		}).Debug("Entity levelled up.")
	}
	return levels
}
