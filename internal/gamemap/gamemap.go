package gamemap

import (
	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
)

// LayerGenerator builds the tiles of one chunk layer. It must be
// deterministic in its arguments.
type LayerGenerator func(c ChunkCoord, z int) *Layer

// Map owns every loaded chunk. Chunks and layers are created on demand and
// never regenerated once they exist.
type Map struct {
	chunks map[ChunkCoord]*Chunk
	gen    LayerGenerator
}

// New creates an empty map. A nil generator fills layers with grass.
func New(gen LayerGenerator) *Map {
	if gen == nil {
		gen = func(ChunkCoord, int) *Layer { return NewLayer(TileGrass) }
	}
	return &Map{
		chunks: make(map[ChunkCoord]*Chunk),
		gen:    gen,
	}
}

// LoadChunk creates the chunk at (cx, cy) if absent and adds layer z to it if
// missing. Existing layers are left untouched.
func (m *Map) LoadChunk(cx, cy, z int) {
	c := ChunkCoord{X: cx, Y: cy}
	ch, ok := m.chunks[c]
	if !ok {
		ch = newChunk(c)
		m.chunks[c] = ch
	}
	if _, ok := ch.Layers[z]; ok {
		return
	}
	l := m.gen(c, z)
	if l == nil {
		l = NewLayer(TileGrass)
	}
	ch.Layers[z] = l
	logger.Log.WithFields(logrus.Fields{
		"component": "gamemap",
		"chunk_x":   cx,
		"chunk_y":   cy,
		"layer":     z,
	}).Debug("Layer generated.")
}

// LoadAround loads every chunk within Chebyshev distance radius of the chunk
// holding p, on p's layer.
func (m *Map) LoadAround(p component.Position, radius int) {
	center := ToChunk(p.X, p.Y)
	for cy := center.Y - radius; cy <= center.Y+radius; cy++ {
		for cx := center.X - radius; cx <= center.X+radius; cx++ {
			m.LoadChunk(cx, cy, p.Z)
		}
	}
}

// Layer returns a loaded layer.
func (m *Map) Layer(c ChunkCoord, z int) (*Layer, bool) {
	ch, ok := m.chunks[c]
	if !ok {
		return nil, false
	}
	l, ok := ch.Layers[z]
	return l, ok
}

// layerAt returns the layer holding world position p.
func (m *Map) layerAt(p component.Position) (*Layer, bool) {
	return m.Layer(ToChunk(p.X, p.Y), p.Z)
}

// Tile returns the tile at p. It is absent only when the owning chunk layer
// was never loaded.
func (m *Map) Tile(p component.Position) (*Tile, bool) {
	l, ok := m.layerAt(p)
	if !ok {
		return nil, false
	}
	lx, ly := ToLocal(p.X, p.Y)
	return l.At(lx, ly)
}

// IsWalkable reports whether p is loaded and walkable.
func (m *Map) IsWalkable(p component.Position) bool {
	t, ok := m.Tile(p)
	return ok && t.Walkable()
}

// BlocksSight reports whether p blocks sight. Unloaded tiles are opaque.
func (m *Map) BlocksSight(p component.Position) bool {
	t, ok := m.Tile(p)
	return !ok || t.BlockSight()
}

// PlaceStructure puts s on the tile at p, replacing any structure there.
// It returns false when p is not loaded.
func (m *Map) PlaceStructure(p component.Position, s Structure) bool {
	t, ok := m.Tile(p)
	if !ok {
		return false
	}
	t.Structure = s
	return true
}

// ChunkCount returns the number of loaded chunks.
func (m *Map) ChunkCount() int { return len(m.chunks) }

// Chunks calls fn for every loaded chunk in unspecified order.
func (m *Map) Chunks(fn func(*Chunk)) {
	for _, ch := range m.chunks {
		fn(ch)
	}
}

// ClearVisible empties the visible set of every loaded layer. Revealed sets
// are kept.
func (m *Map) ClearVisible() {
	for _, ch := range m.chunks {
		for _, l := range ch.Layers {
			l.Visible.Clear()
		}
	}
}

// MarkVisible records p as visible and revealed. It returns false when p's
// layer is not loaded.
func (m *Map) MarkVisible(p component.Position) bool {
	l, ok := m.layerAt(p)
	if !ok {
		return false
	}
	pt := Point{X: p.X, Y: p.Y}
	l.Visible.Put(pt)
	l.Revealed.Put(pt)
	return true
}

// IsVisible reports whether p is in its layer's visible set.
func (m *Map) IsVisible(p component.Position) bool {
	l, ok := m.layerAt(p)
	return ok && l.Visible.Has(Point{X: p.X, Y: p.Y})
}

// IsRevealed reports whether p has ever been visible.
func (m *Map) IsRevealed(p component.Position) bool {
	l, ok := m.layerAt(p)
	return ok && l.Revealed.Has(Point{X: p.X, Y: p.Y})
}
