package system

import (
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// InputSystem applies per-tick intent: view angles, planar movement, weapon
// switching, trigger state and manual reloads. Switch and Reload are one-shot
// and cleared once consumed.
type InputSystem struct {
	clock   *common.Clock
	emitter *combat.CombatEventEmitter
}

func NewInputSystem(clock *common.Clock, emitter *combat.CombatEventEmitter) *InputSystem {
	return &InputSystem{clock: clock, emitter: emitter}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	dt := s.clock.Seconds()

	ecs.ForEach2(w, component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, in *component.Input, t *component.Transform) {
		t.Yaw = in.Yaw
		t.Pitch = in.Pitch
		if move := common.FlattenXZ(in.Move); move.Len() > 0 {
			t.Position = t.Position.Add(move.Mul(dt))
		}

		armory, ok := ecs.Get(w, e, component.ArmoryComponent.Kind())
		if !ok || armory.Loadout == nil {
			return
		}
		if in.Switch >= 0 {
			slot := armory.Loadout.Activate(in.Switch)
			logger.Debug("weapon switched", "entity", e, "slot", slot, "weapon", armory.Loadout.Active().Name())
			in.Switch = -1
		}
		if in.Pressed {
			in.Pressed = false
			armory.Loadout.SetTrigger(false)
			armory.Loadout.SetTrigger(true)
		}
		armory.Loadout.SetTrigger(in.Trigger)
		if in.Reload {
			in.Reload = false
			if armory.Loadout.Reload(now) {
				s.emitter.Emit(combat.CombatEvent{Type: combat.EventReloadStarted, Attacker: combat.EntityID(e)})
			}
		}
	})
}
