// Package entity models creatures: their stats, equipment, actions and the
// manager that owns them.
package entity

import (
	"chunk-roguelike/internal/component"

	"github.com/gdamore/tcell/v2"
)

// ID uniquely identifies an entity within a Manager.
type ID uint64

// NilID is the zero value; no managed entity has this ID.
const NilID ID = 0

// ControllerKind says who decides an entity's moves.
type ControllerKind uint8

const (
	ControlPlayer ControllerKind = iota
	ControlAI
)

// Controller pairs the controller kind with the AI configuration used when
// Kind is ControlAI.
type Controller struct {
	Kind ControllerKind
	AI   component.AI
}

// PlayerController is the controller of the human player.
func PlayerController() Controller { return Controller{Kind: ControlPlayer} }

// AIController returns an AI controller with the given behavior.
func AIController(ai component.AI) Controller {
	return Controller{Kind: ControlAI, AI: ai}
}

// Entity is a creature in the world. Entities refer to the map and to each
// other only through world coordinates.
type Entity struct {
	ID         ID
	Kind       Kind
	Name       string
	Position   component.Position
	Facing     component.Direction
	Controller Controller
	Stats      component.Stats
	Equipment  component.Equipment
	Inventory  component.Inventory
	XPDrop     int
	Level      component.LevelManager
	Actions    []Action
}

// New creates an entity of kind at p with the kind's preset stats and actions.
func New(kind Kind, name string, p component.Position, ctrl Controller) *Entity {
	preset := kind.preset()
	if name == "" {
		name = preset.name
	}
	return &Entity{
		Kind:       kind,
		Name:       name,
		Position:   p,
		Facing:     component.South,
		Controller: ctrl,
		Stats:      preset.stats,
		Equipment:  make(component.Equipment),
		XPDrop:     preset.xpDrop,
		Level:      component.NewLevelManager(),
		Actions:    preset.actions(),
	}
}

// NewPlayer creates the player-controlled human.
func NewPlayer(p component.Position) *Entity {
	return New(Human, "", p, PlayerController())
}

// NewAI creates an AI-controlled entity of kind using the kind's default
// behavior.
func NewAI(kind Kind, p component.Position) *Entity {
	return New(kind, "", p, AIController(kind.preset().ai))
}

// IsPlayer reports whether the entity is driven by player input.
func (e *Entity) IsPlayer() bool { return e.Controller.Kind == ControlPlayer }

// IsDead reports whether HP has reached zero.
func (e *Entity) IsDead() bool { return e.Stats.IsDead() }

// Symbol is the glyph drawn for the entity.
func (e *Entity) Symbol() string { return e.Kind.Symbol() }

// Color is the entity's foreground color.
func (e *Entity) Color() tcell.Color { return e.Kind.Color() }

// TakeDamage applies damage and returns the amount actually dealt.
func (e *Entity) TakeDamage(amount int) int { return e.Stats.TakeDamage(amount) }

// Weapon returns the item held in the main hand.
func (e *Entity) Weapon() (component.Item, bool) {
	it, ok := e.Equipment[component.SlotMainHand]
	if !ok || it.IsEmpty() {
		return component.Item{}, false
	}
	return it, true
}

// Defense is base defense plus equipment defense.
func (e *Entity) Defense() int {
	return e.Stats.Defense + e.Equipment.Defense()
}

// Equip puts it in its slot. Whatever was in the slot goes to the inventory.
// Items without a slot are stored in the inventory instead.
func (e *Entity) Equip(it component.Item) bool {
	if !it.Equipable() {
		e.Inventory.Add(it)
		return false
	}
	if e.Equipment == nil {
		e.Equipment = make(component.Equipment)
	}
	if prev, ok := e.Equipment[it.Slot]; ok && !prev.IsEmpty() {
		e.Inventory.Add(prev)
	}
	e.Equipment[it.Slot] = it
	return true
}

// Unequip moves the item in slot to the inventory.
func (e *Entity) Unequip(slot component.Slot) (component.Item, bool) {
	it, ok := e.Equipment[slot]
	if !ok || it.IsEmpty() {
		return component.Item{}, false
	}
	delete(e.Equipment, slot)
	e.Inventory.Add(it)
	return it, true
}

// UseItem consumes the inventory item at index i and returns the HP it
// restored. Equipable items are equipped instead.
func (e *Entity) UseItem(i int) (int, bool) {
	it, ok := e.Inventory.Remove(i)
	if !ok {
		return 0, false
	}
	if it.Equipable() {
		e.Equip(it)
		return 0, true
	}
	return e.Stats.Heal(it.Healing), true
}
