package component

import "testing"

func TestFacing(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   Direction
	}{
		{0, -1, North},
		{0, 1, South},
		{1, 0, East},
		{-1, 0, West},
		{1, -1, East},
		{0, 0, South}, // unchanged
	}
	for _, c := range cases {
		if got := Facing(South, c.dx, c.dy); got != c.want {
			t.Errorf("Facing(%d,%d) = %v; want %v", c.dx, c.dy, got, c.want)
		}
	}
}

func TestInFront(t *testing.T) {
	p := Position{X: 3, Y: 4, Z: -1}
	if got := North.InFront(p); got != (Position{X: 3, Y: 3, Z: -1}) {
		t.Errorf("North.InFront = %+v", got)
	}
	if got := West.InFront(p); got != (Position{X: 2, Y: 4, Z: -1}) {
		t.Errorf("West.InFront = %+v", got)
	}
}
