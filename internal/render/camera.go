package render

import (
	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/gamemap"
)

// Rect is an area of the screen in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Camera holds the world position drawn at the top-left corner of the
// viewport. Every world tile is one terminal cell.
type Camera struct {
	Position component.Position
}

// NewCamera creates a camera centered on p within area.
func NewCamera(p component.Position, area Rect) *Camera {
	c := &Camera{}
	c.Center(p, area)
	return c
}

// Center repositions the camera so that p is in the middle of area.
func (c *Camera) Center(p component.Position, area Rect) {
	c.Position = component.Position{
		X: p.X - area.Width/2,
		Y: p.Y - area.Height/2,
		Z: p.Z,
	}
}

// WorldToScreen converts a world position to a screen cell inside area.
// ok is false when the position falls outside the viewport.
func (c *Camera) WorldToScreen(p component.Position, area Rect) (x, y int, ok bool) {
	sx := p.X - c.Position.X
	sy := p.Y - c.Position.Y
	if sx < 0 || sy < 0 || sx >= area.Width || sy >= area.Height {
		return 0, 0, false
	}
	return area.X + sx, area.Y + sy, true
}

// ScreenToWorld converts a screen cell inside area back to a world position
// on the camera's layer.
func (c *Camera) ScreenToWorld(x, y int, area Rect) component.Position {
	return component.Position{
		X: x - area.X + c.Position.X,
		Y: y - area.Y + c.Position.Y,
		Z: c.Position.Z,
	}
}

// IsPointOnScreen reports whether p is inside the viewport.
func (c *Camera) IsPointOnScreen(p component.Position, area Rect) bool {
	_, _, ok := c.WorldToScreen(p, area)
	return ok
}

// IsRectOnScreen reports whether the world rectangle with top-left corner
// topLeft and the given size overlaps the viewport.
func (c *Camera) IsRectOnScreen(topLeft component.Position, width, height int, area Rect) bool {
	left, top := topLeft.X, topLeft.Y
	right, bottom := left+width, top+height

	screenLeft, screenTop := c.Position.X, c.Position.Y
	screenRight := screenLeft + area.Width
	screenBottom := screenTop + area.Height

	return !(right <= screenLeft || left >= screenRight ||
		bottom <= screenTop || top >= screenBottom)
}

// IsVisibleTile reports whether p is in the current field of view.
func IsVisibleTile(p component.Position, m *gamemap.Map) bool {
	return m.IsVisible(p)
}
