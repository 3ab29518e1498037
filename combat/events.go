package combat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventShotFired       CombatEventType = "shot_fired"
	EventHit             CombatEventType = "hit"
	EventDamageApplied   CombatEventType = "damage_applied"
	EventDeath           CombatEventType = "death"
	EventReloadStarted   CombatEventType = "reload_started"
	EventProjectileSpent CombatEventType = "projectile_spent"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type     CombatEventType
	Shot     uuid.UUID
	Attacker EntityID
	Target   EntityID
	Damage   float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe appends a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
