package system

import (
	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/gamemap"
	"chunk-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
)

// walkLine steps along the Bresenham line from (x0, y0) to (x1, y1),
// endpoints included, stopping early when fn returns false.
func walkLine(x0, y0, x1, y1 int, fn func(x, y int) bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		if !fn(x, y) {
			return
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// BresenhamLine returns the rasterized line between two points, endpoints
// included.
func BresenhamLine(x0, y0, x1, y1 int) []gamemap.Point {
	var pts []gamemap.Point
	walkLine(x0, y0, x1, y1, func(x, y int) bool {
		pts = append(pts, gamemap.Point{X: x, Y: y})
		return true
	})
	return pts
}

// InLineOfSight walks the line from origin to target on origin's layer.
// An unloaded or sight-blocking cell before the target hides it; the target
// itself is always reached, so a wall is seen but hides what lies behind.
func InLineOfSight(origin component.Position, target gamemap.Point, m *gamemap.Map) bool {
	visible := true
	first := true
	walkLine(origin.X, origin.Y, target.X, target.Y, func(x, y int) bool {
		if first {
			first = false
			return true
		}
		if x == target.X && y == target.Y {
			return false
		}
		if m.BlocksSight(component.Position{X: x, Y: y, Z: origin.Z}) {
			visible = false
			return false
		}
		return true
	})
	return visible
}

// ComputeFOV returns the cells visible from origin: those inside the circle
// of radius rng that are in line of sight.
func ComputeFOV(origin component.Position, rng int, m *gamemap.Map) []gamemap.Point {
	if rng < 0 {
		return nil
	}
	var visible []gamemap.Point
	rangeSq := rng * rng
	for y := origin.Y - rng; y <= origin.Y+rng; y++ {
		for x := origin.X - rng; x <= origin.X+rng; x++ {
			dx, dy := x-origin.X, y-origin.Y
			if dx*dx+dy*dy > rangeSq {
				continue
			}
			p := gamemap.Point{X: x, Y: y}
			if InLineOfSight(origin, p, m) {
				visible = append(visible, p)
			}
		}
	}
	return visible
}

// UpdateVisibility replaces the visible sets with the field of view from
// origin and adds it to the revealed sets. Cells whose layer is not loaded
// are dropped.
func UpdateVisibility(origin component.Position, rng int, m *gamemap.Map) {
	visible := ComputeFOV(origin, rng, m)

	m.ClearVisible()
	marked := 0
	for _, p := range visible {
		if m.MarkVisible(component.Position{X: p.X, Y: p.Y, Z: origin.Z}) {
			marked++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":     "fov_system",
		"observer_pos":  origin,
		"radius":        rng,
		"visible_tiles": marked,
	}).Debug("FOV calculation complete.")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
