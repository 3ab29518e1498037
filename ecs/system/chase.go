package system

import (
	"math"

	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

var chaseRoles = []string{"Player", "player"}

// ChaseSystem moves chasers straight at their target on the ground plane.
// A missing or lost target is re-acquired by role.
type ChaseSystem struct {
	clock     *common.Clock
	roles     combat.RoleLookup
	positions combat.Positions
}

func NewChaseSystem(clock *common.Clock, roles combat.RoleLookup, positions combat.Positions) *ChaseSystem {
	return &ChaseSystem{clock: clock, roles: roles, positions: positions}
}

func (s *ChaseSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.positions == nil {
		return
	}
	dt := s.clock.Seconds()

	ecs.ForEach2(w, component.ChaseComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Chase, t *component.Transform) {
		target, ok := s.positions.Position(c.Target)
		if c.Target == 0 || !ok {
			c.Target = s.acquire(combat.EntityID(e))
			if target, ok = s.positions.Position(c.Target); c.Target == 0 || !ok {
				return
			}
		}
		next := c.Chaser.Step(t.Position, target, dt)
		if delta := common.FlattenXZ(next.Sub(t.Position)); delta.Len() > 1e-9 {
			t.Yaw = math.Atan2(delta.X(), -delta.Z())
		}
		t.Position = next
	})
}

func (s *ChaseSystem) acquire(self combat.EntityID) combat.EntityID {
	if s.roles == nil {
		return 0
	}
	for _, role := range chaseRoles {
		if e, ok := s.roles.FindEntityByRole(role); ok && e != self {
			return e
		}
	}
	return 0
}
