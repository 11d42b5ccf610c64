package render

import (
	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudHeight is the number of rows reserved at the bottom for the HUD.
const hudHeight = 6

var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.camera = NewCamera(component.Position{}, r.WorldArea())
	return r
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// WorldArea is the part of the screen the map is drawn in.
func (r *Renderer) WorldArea() Rect {
	w, h := r.screen.Size()
	return Rect{Width: w, Height: max(h-hudHeight, 0)}
}

// HUDArea is the part of the screen below the map.
func (r *Renderer) HUDArea() Rect {
	w, h := r.screen.Size()
	top := max(h-hudHeight, 0)
	return Rect{Y: top, Width: w, Height: h - top}
}

// CenterOn recenters the camera on p.
func (r *Renderer) CenterOn(p component.Position) { r.camera.Center(p, r.WorldArea()) }

// DrawFrame renders tiles, entities and the HUD, then shows the screen.
func (r *Renderer) DrawFrame(m *gamemap.Map, mgr *entity.Manager, messages []string) {
	r.screen.Clear()
	area := r.WorldArea()
	r.drawMap(m, area)
	r.drawEntities(m, mgr, area)
	r.DrawHUD(mgr.Player(), messages)
	r.screen.Show()
}

// drawMap renders visible tiles in color and revealed tiles grayed out.
// Tiles never seen are left blank.
func (r *Renderer) drawMap(m *gamemap.Map, area Rect) {
	for sy := area.Y; sy < area.Y+area.Height; sy++ {
		for sx := area.X; sx < area.X+area.Width; sx++ {
			p := r.camera.ScreenToWorld(sx, sy, area)
			tile, ok := m.Tile(p)
			if !ok {
				continue
			}
			style := baseStyle.Foreground(tile.Color())
			switch {
			case IsVisibleTile(p, m):
			case m.IsRevealed(p):
				style = GrayedStyle(style)
			default:
				continue
			}
			r.putGlyph(sx, sy, tile.Glyph(), style)
		}
	}
}

// drawEntities draws corpses on revealed tiles first, then living entities
// on visible tiles, then the player on top.
func (r *Renderer) drawEntities(m *gamemap.Map, mgr *entity.Manager, area Rect) {
	for _, e := range mgr.Dead() {
		if m.IsRevealed(e.Position) {
			r.drawEntity(e, area, GrayedStyle(baseStyle.Foreground(e.Color())))
		}
	}
	for _, e := range mgr.Living() {
		if !IsVisibleTile(e.Position, m) {
			continue
		}
		style := baseStyle.Foreground(e.Color())
		if e.IsDead() {
			style = GrayedStyle(style)
		}
		r.drawEntity(e, area, style)
	}
	if p := mgr.Player(); p != nil {
		style := baseStyle.Foreground(p.Color()).Bold(true)
		if p.IsDead() {
			style = GrayedStyle(style)
		}
		r.drawEntity(p, area, style)
	}
}

func (r *Renderer) drawEntity(e *entity.Entity, area Rect, style tcell.Style) {
	if e.Position.Z != r.camera.Position.Z {
		return
	}
	sx, sy, ok := r.camera.WorldToScreen(e.Position, area)
	if !ok {
		return
	}
	r.putGlyph(sx, sy, e.Symbol(), style)
}

// putGlyph draws a single glyph at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
