package render

import (
	"strings"
	"testing"

	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.Screen, x, y int) (rune, tcell.Color) {
	r, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return r, fg
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRendererAreas(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	r := NewRenderer(s)
	if got := r.WorldArea(); got != (Rect{Width: 40, Height: 14}) {
		t.Errorf("world area = %+v", got)
	}
	if got := r.HUDArea(); got != (Rect{Y: 14, Width: 40, Height: 6}) {
		t.Errorf("hud area = %+v", got)
	}
}

func TestDrawFrameVisibleAndRevealed(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	r := NewRenderer(s)
	m := gamemap.New(nil)
	m.LoadAround(pos(0, 0, 0), 1)
	m.MarkVisible(pos(0, 0, 0))
	m.MarkVisible(pos(1, 0, 0))
	m.MarkVisible(pos(2, 0, 0))
	m.ClearVisible()
	m.MarkVisible(pos(0, 0, 0))
	m.MarkVisible(pos(1, 0, 0))

	player := entity.NewPlayer(pos(0, 0, 0))
	mgr := entity.NewManager(player)
	sheep := entity.NewAI(entity.Sheep, pos(1, 0, 0))
	mgr.Add(sheep)
	hidden := entity.NewAI(entity.Sheep, pos(2, 0, 0))
	mgr.Add(hidden)

	r.CenterOn(player.Position)
	r.DrawFrame(m, mgr, []string{"hello"})

	// The player sits in the middle of the 40x14 world area.
	if ch, _ := cellAt(s, 20, 7); ch != '@' {
		t.Errorf("player cell = %q, want '@'", ch)
	}
	if ch, fg := cellAt(s, 21, 7); ch != 's' || fg != entity.Sheep.Color() {
		t.Errorf("visible sheep = %q/%v", ch, fg)
	}
	ch, fg := cellAt(s, 22, 7)
	if ch != ',' {
		t.Errorf("revealed tile should show grass without the hidden sheep, got %q", ch)
	}
	if fg != Grayed(gamemap.TileGrass.Color()) {
		t.Errorf("revealed tile should be grayed, got %v", fg)
	}
	if ch, _ := cellAt(s, 23, 7); ch == ',' {
		t.Errorf("unseen tile should be blank, got %q", ch)
	}
	if !strings.Contains(rowText(s, 15), "HP: 100/100") {
		t.Errorf("status line missing: %q", rowText(s, 15))
	}
	if !strings.HasPrefix(rowText(s, 16), "hello") {
		t.Errorf("message line missing: %q", rowText(s, 16))
	}
}

func TestDrawFrameOtherLayerHidden(t *testing.T) {
	s := newSimScreen(t, 20, 12)
	r := NewRenderer(s)
	m := gamemap.New(nil)
	m.LoadAround(pos(0, 0, 0), 1)
	m.LoadAround(pos(0, 0, 1), 1)
	m.MarkVisible(pos(1, 0, 1))

	player := entity.NewPlayer(pos(0, 0, 0))
	mgr := entity.NewManager(player)
	corpse := entity.NewAI(entity.Sheep, pos(1, 0, 1))
	corpse.Stats.HP = 0
	mgr.Add(corpse)
	mgr.CollectDead()

	r.CenterOn(player.Position)
	r.DrawFrame(m, mgr, nil)
	if ch, _ := cellAt(s, 11, 3); ch == 's' {
		t.Error("entities on another layer must not be drawn")
	}
}

func TestStatusLine(t *testing.T) {
	p := entity.NewPlayer(pos(1, 2, 3))
	got := StatusLine(p)
	for _, want := range []string{"HP: 100/100", "MP: 100/100", "Lvl 1 (0/6 XP)", "1,2,3"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
	if StatusLine(nil) != "" {
		t.Error("nil player should give an empty status")
	}
}
