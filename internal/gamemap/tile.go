package gamemap

import "github.com/gdamore/tcell/v2"

// TileKind identifies the terrain of a map cell.
type TileKind uint8

const (
	TileGrass TileKind = iota
	TileWater
	TileStone
)

// Glyph returns the terrain symbol.
func (k TileKind) Glyph() string {
	switch k {
	case TileWater:
		return "~"
	case TileStone:
		return "."
	}
	return ","
}

// Color returns the terrain foreground color.
func (k TileKind) Color() tcell.Color {
	switch k {
	case TileWater:
		return tcell.NewRGBColor(51, 102, 204)
	case TileStone:
		return tcell.NewRGBColor(110, 110, 110)
	}
	return tcell.NewRGBColor(0, 102, 0)
}

// Walkable reports whether the bare terrain can be walked on.
func (k TileKind) Walkable() bool { return k != TileWater }

// BlockSight reports whether the bare terrain blocks sight. No terrain does.
func (k TileKind) BlockSight() bool { return false }

func (k TileKind) String() string {
	switch k {
	case TileWater:
		return "water"
	case TileStone:
		return "stone"
	}
	return "grass"
}

// Tile is one map cell: immutable terrain plus an optional structure that
// overrides the terrain's walkability and sight.
type Tile struct {
	Kind      TileKind
	Structure Structure
}

// Walkable resolves structure over terrain.
func (t *Tile) Walkable() bool {
	if t.Structure != nil {
		return t.Structure.Walkable()
	}
	return t.Kind.Walkable()
}

// BlockSight resolves structure over terrain.
func (t *Tile) BlockSight() bool {
	if t.Structure != nil {
		return t.Structure.BlockSight()
	}
	return t.Kind.BlockSight()
}

// Glyph is the symbol drawn for the cell.
func (t *Tile) Glyph() string {
	if t.Structure != nil {
		return t.Structure.Glyph()
	}
	return t.Kind.Glyph()
}

// Color is the foreground color drawn for the cell.
func (t *Tile) Color() tcell.Color {
	if t.Structure != nil {
		return t.Structure.Color()
	}
	return t.Kind.Color()
}
