// Package generate builds chunk layers for the map. Generation is a pure
// function of chunk coordinate and layer, so a layer can be rebuilt at any
// time and always looks the same.
package generate

import (
	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/gamemap"
)

// Local coordinates of the fixed structures placed in every chunk layer.
var (
	DoorAt       = gamemap.Point{X: 5, Y: 5}
	ChestAt      = gamemap.Point{X: 12, Y: 7}
	StairsUpAt   = gamemap.Point{X: 16, Y: 16}
	StairsDownAt = gamemap.Point{X: 18, Y: 16}
)

// pond bounds (inclusive, local) of the water placed on layer 0.
const (
	pondMin = 24
	pondMax = 27
)

// Pattern is the default world generator: grass above ground, stone below,
// a grid of wall posts, a pond on the surface and one of each interactive
// structure.
func Pattern(c gamemap.ChunkCoord, z int) *gamemap.Layer {
	terrain := gamemap.TileGrass
	if z < 0 {
		terrain = gamemap.TileStone
	}
	l := gamemap.NewLayer(terrain)

	for ly := range gamemap.ChunkSize {
		for lx := range gamemap.ChunkSize {
			t := &l.Tiles[ly][lx]
			if z == 0 && inPond(lx, ly) {
				t.Kind = gamemap.TileWater
			}
			if lx%10 == 0 && ly%5 == 0 {
				t.Structure = &gamemap.Wall{}
			}
		}
	}

	l.Tiles[DoorAt.Y][DoorAt.X].Structure = &gamemap.Door{}
	l.Tiles[ChestAt.Y][ChestAt.X].Structure = &gamemap.Chest{Contents: chestLoot(z)}
	l.Tiles[StairsUpAt.Y][StairsUpAt.X].Structure = &gamemap.Stairs{Up: true}
	l.Tiles[StairsDownAt.Y][StairsDownAt.X].Structure = &gamemap.Stairs{Up: false}
	return l
}

// chestLoot is what a chest on layer z starts with. Underground chests also
// hold a weapon.
func chestLoot(z int) component.Inventory {
	var inv component.Inventory
	inv.Add(component.Item{Name: "Health Potion", Healing: 25})
	if z < 0 {
		inv.Add(component.Item{Name: "Short Sword", Slot: component.SlotMainHand, Strength: 3})
	}
	return inv
}

func inPond(lx, ly int) bool {
	return lx >= pondMin && lx <= pondMax && ly >= pondMin && ly <= pondMax
}

// Flat returns a generator that fills every layer with kind and nothing else.
func Flat(kind gamemap.TileKind) gamemap.LayerGenerator {
	return func(gamemap.ChunkCoord, int) *gamemap.Layer {
		return gamemap.NewLayer(kind)
	}
}
