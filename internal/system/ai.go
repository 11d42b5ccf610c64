package system

import (
	"math"

	"chunk-roguelike/internal/component"
	"chunk-roguelike/internal/entity"
	"chunk-roguelike/internal/gamemap"
)

// Decide returns the step an AI-controlled actor wants to take this tick.
// Chasers step toward the nearest living Human in sight, fleers step away
// from it, stationary entities and entities without a target stay put.
// A diagonal step is tried first; when it is neither walkable nor occupied
// by a living entity the horizontal and then the vertical step are tried.
func Decide(actor *entity.Entity, m *gamemap.Map, others []*entity.Entity) (dx, dy, dz int) {
	ai := actor.Controller.AI
	if ai.Behavior == component.BehaviorStationary {
		return 0, 0, 0
	}
	target, ok := nearestHuman(actor.Position, others, ai.SightRange)
	if !ok {
		return 0, 0, 0
	}

	stepX := sign(target.X - actor.Position.X)
	stepY := sign(target.Y - actor.Position.Y)
	if ai.Behavior == component.BehaviorFlee {
		stepX, stepY = -stepX, -stepY
		if stepX == 0 && stepY == 0 {
			return 0, 0, 0
		}
	}
	return pickStep(actor.Position, stepX, stepY, m, others)
}

// nearestHuman returns the position of the closest living Human on the
// same layer within sightRange. A sightRange of zero is unlimited.
func nearestHuman(from component.Position, others []*entity.Entity, sightRange int) (component.Position, bool) {
	var best component.Position
	found := false
	bestDist := math.MaxFloat64
	for _, e := range others {
		if e.Kind != entity.Human || e.IsDead() || !e.Position.SameLayer(from) {
			continue
		}
		dx := float64(e.Position.X - from.X)
		dy := float64(e.Position.Y - from.Y)
		dist := math.Sqrt(dx*dx + dy*dy)
		if (sightRange == 0 || dist <= float64(sightRange)) && dist < bestDist {
			best = e.Position
			bestDist = dist
			found = true
		}
	}
	return best, found
}

func pickStep(from component.Position, stepX, stepY int, m *gamemap.Map, others []*entity.Entity) (int, int, int) {
	candidates := [][2]int{{stepX, stepY}, {stepX, 0}, {0, stepY}}
	for _, c := range candidates {
		if c[0] == 0 && c[1] == 0 {
			continue
		}
		dest := from.Add(c[0], c[1], 0)
		if occupant(others, dest) != nil || m.IsWalkable(dest) {
			return c[0], c[1], 0
		}
	}
	return 0, 0, 0
}
