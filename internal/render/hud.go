package render

import (
	"fmt"

	"chunk-roguelike/internal/entity"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLine summarises the player's state for the HUD.
func StatusLine(p *entity.Entity) string {
	if p == nil {
		return ""
	}
	s := p.Stats
	return fmt.Sprintf("HP: %d/%d  MP: %d/%d  DEF:%d STR:%d MAG:%d  Lvl %d (%d/%d XP)  %d,%d,%d %s",
		s.HP, s.MaxHP, s.Mana, s.MaxMana, p.Defense(), s.Strength, s.Magic,
		p.Level.Level, p.Level.CurrentXP, p.Level.XPToNextLevel(),
		p.Position.X, p.Position.Y, p.Position.Z, p.Facing)
}

// DrawHUD renders the status line and the most recent messages below the map.
func (r *Renderer) DrawHUD(player *entity.Entity, messages []string) {
	area := r.HUDArea()
	if area.Height == 0 {
		return
	}
	r.drawHLine(area.Y, tcell.ColorGray)

	status := StatusLine(player)
	if player != nil && player.IsDead() {
		status = "You died. Press q to quit.  " + status
	}
	r.drawText(0, area.Y+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	rows := area.Height - 2
	start := max(len(messages)-rows, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, area.Y+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
