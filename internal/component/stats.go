package component

// Stats holds an entity's combat attributes. All values are non-negative.
type Stats struct {
	HP, MaxHP     int
	Mana, MaxMana int
	Defense       int
	Strength      int
	Magic         int
}

// TakeDamage lowers HP by amount, never below zero, and returns the damage
// actually dealt.
func (s *Stats) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	dmg := min(amount, s.HP)
	s.HP -= dmg
	return dmg
}

// Heal raises HP by amount, never above MaxHP, and returns the HP restored.
func (s *Stats) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	restored := min(amount, s.MaxHP-s.HP)
	if restored < 0 {
		restored = 0
	}
	s.HP += restored
	return restored
}

// SpendMana deducts cost when enough mana is available.
func (s *Stats) SpendMana(cost int) bool {
	if cost > s.Mana {
		return false
	}
	s.Mana -= cost
	return true
}

// IsDead reports whether HP has reached zero.
func (s Stats) IsDead() bool { return s.HP <= 0 }
