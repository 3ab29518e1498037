package system

import (
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/nav"
	"github.com/milk9111/firefight/physics"
)

// DespawnSystem destroys entities marked with Despawn and releases their
// physics bodies and navigation agents.
type DespawnSystem struct {
	physics *physics.World
	grid    *nav.Grid
}

func NewDespawnSystem(phys *physics.World, grid *nav.Grid) *DespawnSystem {
	return &DespawnSystem{physics: phys, grid: grid}
}

func (s *DespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.DespawnComponent.Kind(), func(e ecs.Entity, d *component.Despawn) {
		logger.Debug("despawn", "entity", e, "reason", d.Reason)
		s.Remove(w, e)
	})
}

// Remove destroys e right away. Safe to call outside a physics step only.
func (s *DespawnSystem) Remove(w *ecs.World, e ecs.Entity) {
	if s == nil || w == nil {
		return
	}
	id := combat.EntityID(e)
	s.physics.Remove(id)
	if s.grid != nil {
		s.grid.RemoveAgent(id)
	}
	ecs.DestroyEntity(w, e)
}
