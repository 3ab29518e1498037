package system

import (
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/physics"
)

// PhysicsSystem registers colliders, pushes transforms into kinematic
// bodies, steps the space and copies projectile positions back.
type PhysicsSystem struct {
	clock *common.Clock
	world *physics.World
}

func NewPhysicsSystem(clock *common.Clock, world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{clock: clock, world: world}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.world == nil {
		return
	}
	dt := s.clock.Seconds()

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collider, t *component.Transform) {
		id := combat.EntityID(e)
		if !c.Registered || !s.world.Has(id) {
			s.world.AddActor(id, t.Position, physics.Shape{
				Radius: c.Radius,
				HalfX:  c.HalfX,
				HalfZ:  c.HalfZ,
				Height: c.Height,
				Layer:  c.Layer,
				Sensor: c.Sensor,
			})
			c.Registered = true
			return
		}
		s.world.MoveActor(id, t.Position, dt)
	})

	s.world.Step(dt)

	ecs.ForEach2(w, component.ProjectileBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.ProjectileBody, t *component.Transform) {
		if pos, ok := s.world.Position(combat.EntityID(e)); ok {
			t.Position = pos
		}
	})
}
