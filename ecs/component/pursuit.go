package component

import "github.com/milk9111/firefight/combat"

// Pursuit drives a hostile's navigation toward its target.
type Pursuit struct {
	Controller *combat.Pursuer
}

var PursuitComponent = NewComponent[Pursuit]()

// Chase steers an entity straight at Target without navigation.
type Chase struct {
	Chaser combat.Chaser
	Target combat.EntityID
}

var ChaseComponent = NewComponent[Chase]()

// NavAgent registers an entity with the navigation grid.
type NavAgent struct {
	Speed float64
}

var NavAgentComponent = NewComponent[NavAgent]()
