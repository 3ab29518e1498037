package system

import (
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/physics"
)

const (
	defaultFOVDegrees     = 75
	defaultViewportHeight = 720
)

// FireControlSystem ticks every armory's loadout. Hitscan shots resolve
// inline; projectile shots spawn a projectile entity with a physics body.
type FireControlSystem struct {
	clock    *common.Clock
	rng      combat.Sampler
	resolver *combat.HitResolver
	physics  *physics.World
	emitter  *combat.CombatEventEmitter

	FOVDegrees       float64
	ViewportHeight   float64
	// ProjectileRadius maps a projectile weapon to its body radius.
	ProjectileRadius map[string]float64
}

func NewFireControlSystem(clock *common.Clock, rng combat.Sampler, resolver *combat.HitResolver, phys *physics.World, emitter *combat.CombatEventEmitter) *FireControlSystem {
	return &FireControlSystem{
		clock:          clock,
		rng:            rng,
		resolver:       resolver,
		physics:        phys,
		emitter:        emitter,
		FOVDegrees:     defaultFOVDegrees,
		ViewportHeight: defaultViewportHeight,
	}
}

func (s *FireControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	dt := s.clock.Seconds()

	ecs.ForEach2(w, component.ArmoryComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, armory *component.Armory, t *component.Transform) {
		loadout := armory.Loadout
		active := loadout.Active()
		if active == nil {
			return
		}
		shooter := combat.EntityID(e)
		wasReloading := active.IsReloading()

		shot, fired := loadout.Tick(now, AimFor(t, armory), s.rng)
		armory.Firing = fired
		armory.Reticle.Update(dt, active.Config().SpreadDegrees, s.FOVDegrees, s.ViewportHeight, fired)

		if !wasReloading && active.IsReloading() {
			s.emitter.Emit(combat.CombatEvent{Type: combat.EventReloadStarted, Attacker: shooter})
		}
		if !fired {
			return
		}

		s.emitter.Emit(combat.CombatEvent{
			Type:     combat.EventShotFired,
			Shot:     shot.ID,
			Attacker: shooter,
			Point:    shot.Origin,
			Normal:   shot.Direction,
		})
		switch shot.Delivery {
		case combat.DeliveryHitscan:
			s.resolver.Resolve(shot, shooter)
		case combat.DeliveryProjectile:
			s.spawnProjectile(w, shot, shooter)
		}
	})
}

func (s *FireControlSystem) spawnProjectile(w *ecs.World, shot combat.Shot, owner combat.EntityID) {
	e := ecs.CreateEntity(w)
	body := combat.NewProjectile(shot, owner, s.clock.Now())
	_ = ecs.Add(w, e, component.ProjectileTagComponent.Kind(), &component.ProjectileTag{})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: shot.Origin})
	_ = ecs.Add(w, e, component.ProjectileBodyComponent.Kind(), &component.ProjectileBody{Body: body})
	radius := s.ProjectileRadius[shot.Weapon]
	if radius <= 0 {
		radius = physics.DefaultProjectileRadius
	}
	s.physics.AddProjectile(combat.EntityID(e), owner, shot.Origin, body.Velocity, radius)
	logger.Debug("projectile spawned", "entity", e, "owner", owner, "weapon", shot.Weapon)
}
