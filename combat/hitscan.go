package combat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// HitEvent describes what a hitscan ray struck.
type HitEvent struct {
	Shot     uuid.UUID
	Attacker EntityID
	Entity   EntityID
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Damage   float64
	// Damaged is true when a Damageable received the hit.
	Damaged bool
}

// HitResolver resolves instant rays against the collision service.
type HitResolver struct {
	Collision Collision
	Targets   TargetLookup
	Effects   Effects
	Emitter   *CombatEventEmitter
}

func NewHitResolver(col Collision, targets TargetLookup, fx Effects) *HitResolver {
	if fx == nil {
		fx = NopEffects{}
	}
	return &HitResolver{
		Collision: col,
		Targets:   targets,
		Effects:   fx,
	}
}

// Resolve fires shot's ray, ignoring the shooter.
func (r *HitResolver) Resolve(shot Shot, shooter EntityID) (HitEvent, bool) {
	return r.resolve(shot.ID, shot.Origin, shot.Direction, shot.Range, ShotFilter(shooter), shot.Damage)
}

// ResolveHitscan casts one ray. If it strikes an entity whose Damageable can
// be found (on the entity or an ancestor), exactly one TakeDamage call is
// delivered. Any hit requests an impact effect. ok is false when nothing was
// struck within maxRange.
func (r *HitResolver) ResolveHitscan(origin, direction mgl64.Vec3, maxRange float64, filter CollisionFilter, damage float64) (HitEvent, bool) {
	return r.resolve(uuid.Nil, origin, direction, maxRange, filter, damage)
}

func (r *HitResolver) resolve(shotID uuid.UUID, origin, direction mgl64.Vec3, maxRange float64, filter CollisionFilter, damage float64) (HitEvent, bool) {
	if r == nil || r.Collision == nil || maxRange <= 0 || direction.Len() < 1e-9 {
		return HitEvent{}, false
	}
	hit, ok := r.Collision.Raycast(origin, direction.Normalize(), maxRange, filter)
	if !ok {
		return HitEvent{}, false
	}

	evt := HitEvent{
		Shot:     shotID,
		Attacker: filter.Ignore,
		Entity:   hit.Entity,
		Point:    hit.Point,
		Normal:   hit.Normal,
		Distance: hit.Distance,
	}
	r.emit(EventHit, evt)
	if hit.Entity != 0 && r.Targets != nil {
		if target, found := r.Targets.FindDamageable(hit.Entity); found {
			target.TakeDamage(damage, hit.Point, hit.Normal)
			evt.Damage = damage
			evt.Damaged = true
			logger.Debug("hitscan damage", "target", hit.Entity, "damage", damage, "remaining", target.CurrentHealth())
		}
	}
	if r.Effects != nil {
		r.Effects.SpawnImpact(hit.Point, hit.Normal, evt.Damaged)
	}
	if evt.Damaged {
		r.emit(EventDamageApplied, evt)
	}
	return evt, true
}

func (r *HitResolver) emit(kind CombatEventType, evt HitEvent) {
	if r.Emitter == nil {
		return
	}
	r.Emitter.Emit(CombatEvent{
		Type:     kind,
		Shot:     evt.Shot,
		Attacker: evt.Attacker,
		Target:   evt.Entity,
		Damage:   evt.Damage,
		Point:    evt.Point,
		Normal:   evt.Normal,
	})
}
