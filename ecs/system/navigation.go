package system

import (
	"math"

	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/nav"
)

// NavigationSystem advances the navigation grid and copies agent positions
// back into transforms, facing the direction of travel.
type NavigationSystem struct {
	clock *common.Clock
	grid  *nav.Grid
}

func NewNavigationSystem(clock *common.Clock, grid *nav.Grid) *NavigationSystem {
	return &NavigationSystem{clock: clock, grid: grid}
}

func (s *NavigationSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.grid == nil {
		return
	}
	s.grid.Advance(s.clock.Seconds())

	ecs.ForEach2(w, component.NavAgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.NavAgent, t *component.Transform) {
		id := combat.EntityID(e)
		if !s.grid.IsOnSurface(id) {
			return
		}
		pos, ok := s.grid.AgentPosition(id)
		if !ok {
			return
		}
		if delta := common.FlattenXZ(pos.Sub(t.Position)); delta.Len() > 1e-9 {
			t.Yaw = math.Atan2(delta.X(), -delta.Z())
		}
		t.Position = pos
	})
}
