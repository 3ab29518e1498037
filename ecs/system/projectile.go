package system

import (
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/physics"
)

// ProjectileSystem applies the contacts buffered during the physics step
// and expires projectiles that outlived their lifetime. Spent projectiles
// are marked for despawn.
type ProjectileSystem struct {
	clock   *common.Clock
	physics *physics.World
	targets combat.TargetLookup
	effects combat.Effects
	emitter *combat.CombatEventEmitter
}

func NewProjectileSystem(clock *common.Clock, phys *physics.World, targets combat.TargetLookup, fx combat.Effects, emitter *combat.CombatEventEmitter) *ProjectileSystem {
	if fx == nil {
		fx = combat.NopEffects{}
	}
	return &ProjectileSystem{clock: clock, physics: phys, targets: targets, effects: fx, emitter: emitter}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, c := range s.physics.Contacts() {
		e := ecs.Entity(c.Self)
		pb, ok := ecs.Get(w, e, component.ProjectileBodyComponent.Kind())
		if !ok || pb.Body == nil {
			continue
		}
		struck := false
		if c.Other != 0 && s.targets != nil && !c.Sensor {
			_, struck = s.targets.FindDamageable(c.Other)
		}
		if !pb.Body.OnContact(c, s.targets) {
			continue
		}
		s.physics.StopProjectile(c.Self)
		s.effects.SpawnImpact(c.Point, c.Normal, struck)
		if struck {
			s.emitter.Emit(combat.CombatEvent{
				Type:     combat.EventDamageApplied,
				Shot:     pb.Body.Shot,
				Attacker: pb.Body.Owner,
				Target:   c.Other,
				Damage:   pb.Body.Damage,
				Point:    c.Point,
				Normal:   c.Normal,
			})
		}
		s.spend(w, e, pb.Body, "contact")
	}

	now := s.clock.Now()
	ecs.ForEach(w, component.ProjectileBodyComponent.Kind(), func(e ecs.Entity, pb *component.ProjectileBody) {
		if pb.Body.Expired(now) {
			s.spend(w, e, pb.Body, "expired")
		}
	})
}

func (s *ProjectileSystem) spend(w *ecs.World, e ecs.Entity, p *combat.Projectile, reason string) {
	if ecs.Has(w, e, component.DespawnComponent.Kind()) {
		return
	}
	_ = ecs.Add(w, e, component.DespawnComponent.Kind(), &component.Despawn{Reason: reason})
	s.emitter.Emit(combat.CombatEvent{Type: combat.EventProjectileSpent, Shot: p.Shot, Attacker: p.Owner})
}
