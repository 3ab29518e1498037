package component

import "github.com/milk9111/firefight/combat"

// DamageReceiver exposes an entity's Damageable to hit resolution.
type DamageReceiver struct {
	Target combat.Damageable
}

var DamageReceiverComponent = NewComponent[DamageReceiver]()
