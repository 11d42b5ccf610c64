package gamemap

import "github.com/zyedidia/generic/mapset"

// ChunkSize is the width and height of a chunk in tiles.
const ChunkSize = 32

// LoadDistance is the default radius, in chunks, loaded around a point.
const LoadDistance = 2

// Point is a planar world coordinate.
type Point struct {
	X, Y int
}

// ChunkCoord addresses a chunk: world coordinates floor-divided by ChunkSize.
type ChunkCoord struct {
	X, Y int
}

// Layer is one z-slice of a chunk together with its visibility memory.
// Visible and Revealed hold world coordinates.
type Layer struct {
	Tiles    [ChunkSize][ChunkSize]Tile // [ly][lx]
	Visible  mapset.Set[Point]
	Revealed mapset.Set[Point]
}

// NewLayer returns a layer filled with the given terrain.
func NewLayer(kind TileKind) *Layer {
	l := &Layer{
		Visible:  mapset.New[Point](),
		Revealed: mapset.New[Point](),
	}
	for y := range ChunkSize {
		for x := range ChunkSize {
			l.Tiles[y][x] = Tile{Kind: kind}
		}
	}
	return l
}

// At returns the tile at local (lx, ly), or false when out of range.
func (l *Layer) At(lx, ly int) (*Tile, bool) {
	if lx < 0 || ly < 0 || lx >= ChunkSize || ly >= ChunkSize {
		return nil, false
	}
	return &l.Tiles[ly][lx], true
}

// Chunk owns one Layer per loaded z index.
type Chunk struct {
	Coord  ChunkCoord
	Layers map[int]*Layer
}

func newChunk(c ChunkCoord) *Chunk {
	return &Chunk{Coord: c, Layers: make(map[int]*Layer)}
}

// floorDiv and floorMod are Euclidean for a positive divisor, so -1 maps to
// chunk -1, local ChunkSize-1.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ToChunk returns the chunk holding world (x, y).
func ToChunk(x, y int) ChunkCoord {
	return ChunkCoord{X: floorDiv(x, ChunkSize), Y: floorDiv(y, ChunkSize)}
}

// ToLocal returns the in-chunk coordinate of world (x, y), each in [0, ChunkSize).
func ToLocal(x, y int) (int, int) {
	return floorMod(x, ChunkSize), floorMod(y, ChunkSize)
}

// ToWorld is the inverse of ToChunk and ToLocal.
func ToWorld(c ChunkCoord, lx, ly int) (int, int) {
	return c.X*ChunkSize + lx, c.Y*ChunkSize + ly
}
