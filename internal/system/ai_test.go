package system

import (
	"testing"

	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name       string
		kind       entity.Kind
		behavior   component.AIBehavior
		self, prey component.Position
		dx, dy     int
	}{
		{"chase diagonal", entity.Dragon, component.BehaviorChase, pos(0, 0, 0), pos(3, 2, 0), 1, 1},
		{"chase straight", entity.Dragon, component.BehaviorChase, pos(0, 0, 0), pos(0, -4, 0), 0, -1},
		{"flee", entity.Sheep, component.BehaviorFlee, pos(0, 0, 0), pos(2, 1, 0), -1, -1},
		{"stationary", entity.Dragon, component.BehaviorStationary, pos(0, 0, 0), pos(1, 0, 0), 0, 0},
		{"out of sight", entity.Dragon, component.BehaviorChase, pos(0, 0, 0), pos(20, 0, 0), 0, 0},
		{"other layer", entity.Dragon, component.BehaviorChase, pos(0, 0, 0), pos(1, 1, 1), 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := openMap()
			self := entity.NewAI(c.kind, c.self)
			self.Controller.AI.Behavior = c.behavior
			prey := entity.NewPlayer(c.prey)

			dx, dy, dz := Decide(self, m, []*entity.Entity{prey})
			if dx != c.dx || dy != c.dy || dz != 0 {
				t.Errorf("got (%d,%d,%d), want (%d,%d,0)", dx, dy, dz, c.dx, c.dy)
			}
		})
	}
}

func TestDecideIgnoresNonHumans(t *testing.T) {
	m := openMap()
	dragon := entity.NewAI(entity.Dragon, pos(0, 0, 0))
	sheep := entity.NewAI(entity.Sheep, pos(1, 1, 0))
	if dx, dy, _ := Decide(dragon, m, []*entity.Entity{sheep}); dx != 0 || dy != 0 {
		t.Errorf("dragon should only chase humans, got (%d,%d)", dx, dy)
	}
}

func TestDecideIgnoresDeadHumans(t *testing.T) {
	m := openMap()
	dragon := entity.NewAI(entity.Dragon, pos(0, 0, 0))
	corpse := entity.NewPlayer(pos(2, 0, 0))
	corpse.Stats.HP = 0
	if dx, dy, _ := Decide(dragon, m, []*entity.Entity{corpse}); dx != 0 || dy != 0 {
		t.Errorf("dead humans are not targets, got (%d,%d)", dx, dy)
	}
}

func TestDecidePicksNearest(t *testing.T) {
	m := openMap()
	dragon := entity.NewAI(entity.Dragon, pos(0, 0, 0))
	near := entity.NewPlayer(pos(-2, 0, 0))
	far := entity.NewAI(entity.Human, pos(5, 0, 0))
	if dx, _, _ := Decide(dragon, m, []*entity.Entity{far, near}); dx != -1 {
		t.Errorf("expected a step toward the nearest human, got dx=%d", dx)
	}
}

func TestDecideFallsBackAroundWall(t *testing.T) {
	m := openMap()
	m.PlaceStructure(pos(1, 1, 0), &gamemap.Wall{})
	dragon := entity.NewAI(entity.Dragon, pos(0, 0, 0))
	prey := entity.NewPlayer(pos(4, 4, 0))

	dx, dy, _ := Decide(dragon, m, []*entity.Entity{prey})
	if dx != 1 || dy != 0 {
		t.Errorf("diagonal is walled, expected horizontal (1,0), got (%d,%d)", dx, dy)
	}

	m.PlaceStructure(pos(1, 0, 0), &gamemap.Wall{})
	dx, dy, _ = Decide(dragon, m, []*entity.Entity{prey})
	if dx != 0 || dy != 1 {
		t.Errorf("expected vertical (0,1), got (%d,%d)", dx, dy)
	}

	m.PlaceStructure(pos(0, 1, 0), &gamemap.Wall{})
	dx, dy, _ = Decide(dragon, m, []*entity.Entity{prey})
	if dx != 0 || dy != 0 {
		t.Errorf("boxed in, expected no step, got (%d,%d)", dx, dy)
	}
}

func TestDecideStepsIntoOccupiedCell(t *testing.T) {
	m := openMap()
	dragon := entity.NewAI(entity.Dragon, pos(0, 0, 0))
	prey := entity.NewPlayer(pos(1, 1, 0))
	if dx, dy, _ := Decide(dragon, m, []*entity.Entity{prey}); dx != 1 || dy != 1 {
		t.Errorf("adjacent target should be bumped, got (%d,%d)", dx, dy)
	}
}
