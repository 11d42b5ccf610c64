package component

// Position is a world coordinate. Z is the discrete layer index; entities and
// tiles only interact when they share a layer.
type Position struct {
	X, Y, Z int
}

// Add returns the position displaced by (dx, dy, dz).
func (p Position) Add(dx, dy, dz int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// SameLayer reports whether p and o share a layer.
func (p Position) SameLayer(o Position) bool { return p.Z == o.Z }

// Direction is the way an entity is facing.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the unit step for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// InFront returns the position directly ahead of p when facing d.
func (d Direction) InFront(p Position) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy, 0)
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "?"
}

// Facing returns the direction implied by a movement delta. A vertical step is
// applied first and a horizontal one overrides it, so diagonal deltas face
// east or west. A zero planar delta keeps the current direction.
func Facing(current Direction, dx, dy int) Direction {
	d := current
	if dy < 0 {
		d = North
	} else if dy > 0 {
		d = South
	}
	if dx < 0 {
		d = West
	} else if dx > 0 {
		d = East
	}
	return d
}
