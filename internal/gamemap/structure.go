package gamemap

import (
	"chunk-roguelike/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Structure is an interactive object occupying a tile. The set of variants is
// closed: *Wall, *Door, *Chest and *Stairs.
type Structure interface {
	Glyph() string
	Color() tcell.Color
	BlockSight() bool
	Walkable() bool
	Name() string
}

var (
	wallColor = tcell.NewRGBColor(150, 150, 150)
	woodColor = tcell.NewRGBColor(95, 65, 33)
)

// Wall blocks movement and sight.
type Wall struct{}

func (*Wall) Glyph() string      { return "#" }
func (*Wall) Color() tcell.Color { return wallColor }
func (*Wall) BlockSight() bool   { return true }
func (*Wall) Walkable() bool     { return false }
func (*Wall) Name() string       { return "wall" }

// Door blocks movement and sight while closed.
type Door struct {
	Open bool
}

func (d *Door) Glyph() string {
	if d.Open {
		return "="
	}
	return "|"
}
func (*Door) Color() tcell.Color { return woodColor }
func (d *Door) BlockSight() bool { return !d.Open }
func (d *Door) Walkable() bool   { return d.Open }
func (*Door) Name() string       { return "door" }

// Toggle flips the door and returns the new open state.
func (d *Door) Toggle() bool {
	d.Open = !d.Open
	return d.Open
}

// Chest is a container; it blocks movement but not sight.
type Chest struct {
	Opened   bool
	Contents component.Inventory
}

func (*Chest) Glyph() string      { return "c" }
func (*Chest) Color() tcell.Color { return woodColor }
func (*Chest) BlockSight() bool   { return false }
func (*Chest) Walkable() bool     { return false }
func (*Chest) Name() string       { return "chest" }

// Stairs move whoever uses them one layer up or down.
type Stairs struct {
	Up bool
}

func (s *Stairs) Glyph() string {
	if s.Up {
		return "<"
	}
	return ">"
}
func (*Stairs) Color() tcell.Color { return woodColor }
func (*Stairs) BlockSight() bool   { return false }
func (*Stairs) Walkable() bool     { return true }
func (*Stairs) Name() string       { return "stairs" }

// DZ is the layer displacement applied by the stairs.
func (s *Stairs) DZ() int {
	if s.Up {
		return 1
	}
	return -1
}
