package game

import (
	"testing"

	"chunk-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToCommand(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), CmdUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), CmdDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), CmdLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), CmdRight},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CmdQuit},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), CmdUp},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), CmdDown},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), CmdLeft},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), CmdRight},
		{"y", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), CmdLayerUp},
		{"u", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), CmdLayerDown},
		{"e", tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), CmdInteract},
		{"wait", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), CmdWait},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), CmdUseItem},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), CmdQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), CmdNone},
	}
	for _, c := range cases {
		if got := KeyToCommand(c.ev); got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestSystemCommand(t *testing.T) {
	cases := map[Command]system.Command{
		CmdUp:        system.CmdUp,
		CmdDown:      system.CmdDown,
		CmdLeft:      system.CmdLeft,
		CmdRight:     system.CmdRight,
		CmdLayerUp:   system.CmdLayerUp,
		CmdLayerDown: system.CmdLayerDown,
		CmdInteract:  system.CmdInteract,
		CmdWait:      system.CmdWait,
		CmdUseItem:   system.CmdNone,
		CmdQuit:      system.CmdNone,
		CmdNone:      system.CmdNone,
	}
	for in, want := range cases {
		if got := in.systemCommand(); got != want {
			t.Errorf("command %d: got %d, want %d", in, got, want)
		}
	}
}
