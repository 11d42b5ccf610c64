package entity

import (
	"chunk-roguelike/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Kind is the species of an entity.
type Kind uint8

const (
	Human Kind = iota
	Dragon
	Sheep
)

// Kinds lists every kind, in declaration order.
var Kinds = []Kind{Human, Dragon, Sheep}

func (k Kind) String() string { return k.preset().name }

// Symbol is the glyph drawn for the kind.
func (k Kind) Symbol() string {
	switch k {
	case Dragon:
		return "D"
	case Sheep:
		return "s"
	}
	return "@"
}

// Color is the kind's foreground color.
func (k Kind) Color() tcell.Color {
	switch k {
	case Dragon:
		return tcell.NewRGBColor(255, 0, 0)
	case Sheep:
		return tcell.NewRGBColor(255, 209, 223)
	}
	return tcell.NewRGBColor(255, 255, 255)
}

type preset struct {
	name    string
	stats   component.Stats
	xpDrop  int
	ai      component.AI
	actions func() []Action
}

func basicAttack() Action {
	return MeleeAttack{Label: "Attack", Damage: 10, Element: Physical}
}

func (k Kind) preset() preset {
	switch k {
	case Dragon:
		return preset{
			name: "Dragon",
			stats: component.Stats{
				HP: 1000, MaxHP: 1000, Mana: 200, MaxMana: 200,
				Defense: 50, Strength: 50, Magic: 20,
			},
			xpDrop: 10,
			ai:     component.AI{Behavior: component.BehaviorChase, SightRange: 8},
			actions: func() []Action {
				return []Action{
					basicAttack(),
					AreaAttack{Label: "Fire Breath", Damage: 20, Cost: 50, Element: Fire, Reach: 1, Radius: 1},
				}
			},
		}
	case Sheep:
		return preset{
			name: "Sheep",
			stats: component.Stats{
				HP: 30, MaxHP: 30,
				Defense: 5, Strength: 1,
			},
			xpDrop:  10,
			ai:      component.AI{Behavior: component.BehaviorFlee, SightRange: 6},
			actions: func() []Action { return []Action{basicAttack()} },
		}
	}
	return preset{
		name: "Human",
		stats: component.Stats{
			HP: 100, MaxHP: 100, Mana: 100, MaxMana: 100,
			Defense: 5, Strength: 5, Magic: 5,
		},
		xpDrop:  10,
		ai:      component.AI{Behavior: component.BehaviorChase, SightRange: 8},
		actions: func() []Action { return []Action{basicAttack()} },
	}
}
