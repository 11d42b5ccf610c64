package component

import "math"

// XPCurve gives the experience needed to reach a level.
type XPCurve interface {
	XPRequired(level int) int
}

// ExponentialCurve requires ceil(Base * level^Exponent) XP for a level.
type ExponentialCurve struct {
	Base     int
	Exponent float64
}

// DefaultCurve is the curve every entity starts with.
var DefaultCurve = ExponentialCurve{Base: 2, Exponent: 1.5}

func (c ExponentialCurve) XPRequired(level int) int {
	return int(math.Ceil(float64(c.Base) * math.Pow(float64(level), c.Exponent)))
}

// LevelManager tracks level and experience for one entity.
type LevelManager struct {
	Level     int
	CurrentXP int
	Curve     XPCurve
}

// NewLevelManager returns a level-1 manager on the default curve.
func NewLevelManager() LevelManager {
	return LevelManager{Level: 1, Curve: DefaultCurve}
}

func (lm *LevelManager) curve() XPCurve {
	if lm.Curve == nil {
		return DefaultCurve
	}
	return lm.Curve
}

// XPToNextLevel returns the experience required for the next level.
func (lm *LevelManager) XPToNextLevel() int {
	return lm.curve().XPRequired(lm.Level + 1)
}

// AddXP grants xp and applies every level-up it pays for, growing stats once
// per level. It returns the number of levels gained.
func (lm *LevelManager) AddXP(xp int, stats *Stats) int {
	if xp <= 0 {
		return 0
	}
	if lm.Level < 1 {
		lm.Level = 1
	}
	gained := 0
	lm.CurrentXP = saturatingAdd(lm.CurrentXP, xp)
	for {
		need := lm.XPToNextLevel()
		// A curve that asks for nothing would never terminate.
		if need <= 0 || lm.CurrentXP < need {
			break
		}
		lm.CurrentXP -= need
		lm.Level++
		gained++
		if stats != nil {
			stats.levelUp()
		}
	}
	return gained
}

// levelUp grows max HP and mana by 10% with a full restore and adds one point
// to defense, strength and magic.
func (s *Stats) levelUp() {
	s.MaxHP = saturatingAdd(s.MaxHP, s.MaxHP/10)
	s.HP = s.MaxHP
	s.MaxMana = saturatingAdd(s.MaxMana, s.MaxMana/10)
	s.Mana = s.MaxMana
	s.Defense = saturatingAdd(s.Defense, 1)
	s.Strength = saturatingAdd(s.Strength, 1)
	s.Magic = saturatingAdd(s.Magic, 1)
}

// saturatingAdd returns a+b for non-negative b, stopping at math.MaxInt.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
