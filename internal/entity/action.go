package entity

import "chunk-roguelike/internal/component"

// AttackType tags the element of an action. Healing actions restore HP
// instead of dealing damage.
type AttackType uint8

const (
	Physical AttackType = iota
	Fire
	Ice
	Lightning
	Healing
)

func (a AttackType) String() string {
	switch a {
	case Physical:
		return "physical"
	case Fire:
		return "fire"
	case Ice:
		return "ice"
	case Lightning:
		return "lightning"
	case Healing:
		return "healing"
	}
	return "unknown"
}

// Action is a combat effect an entity can apply. Variants: MeleeAttack and
// AreaAttack.
type Action interface {
	Name() string
	ManaCost() int
	Type() AttackType
	BaseDamage() int
	// Range is the farthest (Chebyshev) distance from the source at which the
	// action can be aimed.
	Range() int
	// Covers reports whether p is hit when the action is aimed at target.
	Covers(target, p component.Position) bool
}

// MeleeAttack hits the aimed cell only.
type MeleeAttack struct {
	Label   string
	Damage  int
	Cost    int
	Element AttackType
}

func (a MeleeAttack) Name() string     { return a.Label }
func (a MeleeAttack) ManaCost() int    { return a.Cost }
func (a MeleeAttack) Type() AttackType { return a.Element }
func (a MeleeAttack) BaseDamage() int  { return a.Damage }
func (a MeleeAttack) Range() int       { return 1 }

func (a MeleeAttack) Covers(target, p component.Position) bool {
	return target == p
}

// AreaAttack hits every cell within Radius of the aimed cell, using the same
// circular mask as field of view. Line of sight is not checked.
type AreaAttack struct {
	Label   string
	Damage  int
	Cost    int
	Element AttackType
	Reach   int
	Radius  int
}

func (a AreaAttack) Name() string     { return a.Label }
func (a AreaAttack) ManaCost() int    { return a.Cost }
func (a AreaAttack) Type() AttackType { return a.Element }
func (a AreaAttack) BaseDamage() int  { return a.Damage }
func (a AreaAttack) Range() int       { return a.Reach }

func (a AreaAttack) Covers(target, p component.Position) bool {
	if p.Z != target.Z {
		return false
	}
	dx, dy := p.X-target.X, p.Y-target.Y
	return dx*dx+dy*dy <= a.Radius*a.Radius
}

// Damage is base damage plus the source's strength plus its main-hand
// weapon's strength.
func Damage(a Action, source *Entity) int {
	dmg := a.BaseDamage() + source.Stats.Strength
	if w, ok := source.Weapon(); ok {
		dmg += w.Strength
	}
	return dmg
}

// InReach reports whether target is within the action's planar range of
// source. Layers are ignored so an entity blocked on stairs still strikes.
func InReach(a Action, source, target component.Position) bool {
	return chebyshev(source, target) <= a.Range()
}

func chebyshev(a, b component.Position) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
