package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// maxParentDepth bounds the ancestor walk in FindDamageable.
const maxParentDepth = 8

// FindEntityByRole returns the first live entity tagged with role.
func (s *Simulation) FindEntityByRole(role string) (combat.EntityID, bool) {
	for _, e := range ecs.Query(s.World, component.RoleComponent.Kind()) {
		if r, ok := ecs.Get(s.World, e, component.RoleComponent.Kind()); ok && r.Name == role {
			return combat.EntityID(e), true
		}
	}
	return 0, false
}

// Position resolves a weak entity reference to its current position.
func (s *Simulation) Position(id combat.EntityID) (mgl64.Vec3, bool) {
	t, ok := ecs.Get(s.World, ecs.Entity(id), component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{}, false
	}
	return t.Position, true
}

// FindDamageable returns the Damageable on id or its nearest ancestor.
func (s *Simulation) FindDamageable(id combat.EntityID) (combat.Damageable, bool) {
	e := ecs.Entity(id)
	for depth := 0; depth < maxParentDepth && ecs.IsAlive(s.World, e); depth++ {
		if dr, ok := ecs.Get(s.World, e, component.DamageReceiverComponent.Kind()); ok && dr.Target != nil {
			return dr.Target, true
		}
		parent, ok := ecs.Get(s.World, e, component.ParentComponent.Kind())
		if !ok {
			break
		}
		e = ecs.Entity(parent.Entity)
	}
	return nil, false
}
