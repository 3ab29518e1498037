package system

import (
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// PursuitSystem runs every pursuer's controller. Placement happens once at
// spawn; unplaced pursuers stay idle.
type PursuitSystem struct {
	clock     *common.Clock
	nav       combat.Navigator
	roles     combat.RoleLookup
	positions combat.Positions
}

func NewPursuitSystem(clock *common.Clock, nav combat.Navigator, roles combat.RoleLookup, positions combat.Positions) *PursuitSystem {
	return &PursuitSystem{clock: clock, nav: nav, roles: roles, positions: positions}
}

func (s *PursuitSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	ecs.ForEach(w, component.PursuitComponent.Kind(), func(_ ecs.Entity, p *component.Pursuit) {
		p.Controller.Update(now, s.nav, s.roles, s.positions)
	})
}
