package component

import (
	"math"
	"testing"
)

func TestExponentialCurve(t *testing.T) {
	cases := []struct {
		level, want int
	}{
		{1, 2},
		{2, 6},  // 2 * 2^1.5 = 5.66
		{3, 11}, // 2 * 3^1.5 = 10.39
		{4, 16},
		{5, 23}, // 2 * 5^1.5 = 22.36
	}
	for _, c := range cases {
		if got := DefaultCurve.XPRequired(c.level); got != c.want {
			t.Errorf("XPRequired(%d) = %d; want %d", c.level, got, c.want)
		}
	}
}

func TestAddXPExactRequirementLevelsOnce(t *testing.T) {
	lm := NewLevelManager()
	stats := Stats{HP: 50, MaxHP: 100, Mana: 10, MaxMana: 100, Defense: 5, Strength: 5, Magic: 5}

	gained := lm.AddXP(lm.XPToNextLevel(), &stats)
	if gained != 1 {
		t.Fatalf("levels gained = %d; want 1", gained)
	}
	if lm.Level != 2 {
		t.Errorf("level = %d; want 2", lm.Level)
	}
	if lm.CurrentXP != 0 {
		t.Errorf("current xp = %d; want 0", lm.CurrentXP)
	}
	if stats.MaxHP != 110 || stats.HP != 110 {
		t.Errorf("hp = %d/%d; want 110/110", stats.HP, stats.MaxHP)
	}
	if stats.MaxMana != 110 || stats.Mana != 110 {
		t.Errorf("mana = %d/%d; want 110/110", stats.Mana, stats.MaxMana)
	}
	if stats.Defense != 6 || stats.Strength != 6 || stats.Magic != 6 {
		t.Errorf("def/str/mag = %d/%d/%d; want 6/6/6", stats.Defense, stats.Strength, stats.Magic)
	}
}

func TestAddXPCascades(t *testing.T) {
	lm := NewLevelManager()
	stats := Stats{HP: 100, MaxHP: 100, Defense: 5, Strength: 5, Magic: 5}

	// 6 + 11 + 16 reaches level 4; the extra 7 is below the 23 needed for level 5.
	gained := lm.AddXP(40, &stats)
	if gained != 3 {
		t.Fatalf("levels gained = %d; want 3", gained)
	}
	if lm.Level != 4 || lm.CurrentXP != 7 {
		t.Errorf("level/xp = %d/%d; want 4/7", lm.Level, lm.CurrentXP)
	}
	if stats.MaxHP != 133 {
		t.Errorf("max hp = %d; want 133", stats.MaxHP)
	}
	if stats.Strength != 8 {
		t.Errorf("strength = %d; want 8", stats.Strength)
	}
}

func TestAddXPNeverDecreasesLevel(t *testing.T) {
	lm := NewLevelManager()
	prev := lm.Level
	for _, xp := range []int{0, 1, 3, 0, 50, 2, 1000} {
		lm.AddXP(xp, nil)
		if lm.Level < prev {
			t.Fatalf("level dropped from %d to %d after +%d xp", prev, lm.Level, xp)
		}
		prev = lm.Level
	}
}

func TestAddXPBelowRequirement(t *testing.T) {
	lm := NewLevelManager()
	if gained := lm.AddXP(5, nil); gained != 0 {
		t.Fatalf("levels gained = %d; want 0", gained)
	}
	if lm.Level != 1 || lm.CurrentXP != 5 {
		t.Errorf("level/xp = %d/%d; want 1/5", lm.Level, lm.CurrentXP)
	}
}

type flatCurve struct{ n int }

func (c flatCurve) XPRequired(int) int { return c.n }

func TestAddXPCustomCurve(t *testing.T) {
	lm := LevelManager{Level: 1, Curve: flatCurve{n: 10}}
	if gained := lm.AddXP(35, nil); gained != 3 {
		t.Fatalf("levels gained = %d; want 3", gained)
	}
	if lm.CurrentXP != 5 {
		t.Errorf("current xp = %d; want 5", lm.CurrentXP)
	}

	// A curve that asks for nothing must not spin forever.
	zero := LevelManager{Level: 1, Curve: flatCurve{n: 0}}
	if gained := zero.AddXP(10, nil); gained != 0 {
		t.Errorf("zero curve gained %d levels; want 0", gained)
	}
}

func TestAddXPHugeGrantSaturates(t *testing.T) {
	lm := NewLevelManager()
	stats := Stats{HP: 100, MaxHP: 100, Mana: 100, MaxMana: 100, Defense: 5, Strength: 5, Magic: 5}

	if gained := lm.AddXP(1_000_000_000, &stats); gained < 1000 {
		t.Fatalf("levels gained = %d; want a long cascade", gained)
	}
	if stats.MaxHP != math.MaxInt || stats.HP != stats.MaxHP {
		t.Errorf("hp = %d/%d; want saturated at MaxInt", stats.HP, stats.MaxHP)
	}
	if stats.MaxMana != math.MaxInt || stats.Mana != stats.MaxMana {
		t.Errorf("mana = %d/%d; want saturated at MaxInt", stats.Mana, stats.MaxMana)
	}
	if stats.IsDead() {
		t.Error("levelling up must never kill")
	}
	if lm.CurrentXP < 0 {
		t.Errorf("current xp = %d; want >= 0", lm.CurrentXP)
	}
}

func TestAddXPCurrentXPSaturates(t *testing.T) {
	lm := LevelManager{Level: 1, CurrentXP: math.MaxInt - 5, Curve: flatCurve{n: math.MaxInt}}
	if gained := lm.AddXP(10, nil); gained != 1 {
		t.Fatalf("levels gained = %d; want 1", gained)
	}
	if lm.CurrentXP != 0 {
		t.Errorf("current xp = %d; want 0", lm.CurrentXP)
	}
}
