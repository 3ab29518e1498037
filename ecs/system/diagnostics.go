package system

import (
	"time"

	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// DefaultDiagnosticsInterval is how often an agent's state is logged.
const DefaultDiagnosticsInterval = 2 * time.Second

var aiLogger = common.NewLogger("ai")

// AgentDiagnosticsSystem periodically logs each pursuer's state at debug
// level: placement, surface, target and destination.
type AgentDiagnosticsSystem struct {
	clock *common.Clock
	nav   combat.Navigator
}

func NewAgentDiagnosticsSystem(clock *common.Clock, nav combat.Navigator) *AgentDiagnosticsSystem {
	return &AgentDiagnosticsSystem{clock: clock, nav: nav}
}

func (s *AgentDiagnosticsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	ecs.ForEach2(w, component.AgentDiagnosticsComponent.Kind(), component.PursuitComponent.Kind(), func(e ecs.Entity, d *component.AgentDiagnostics, p *component.Pursuit) {
		if now < d.NextAt {
			return
		}
		interval := d.Interval
		if interval <= 0 {
			interval = DefaultDiagnosticsInterval
		}
		d.NextAt = now + interval

		pursuer := p.Controller
		target, hasTarget := pursuer.Target()
		dest, hasDest := pursuer.Destination()
		onSurface := s.nav != nil && s.nav.IsOnSurface(combat.EntityID(e))
		aiLogger.Debug("agent",
			"entity", e,
			"state", pursuer.State(),
			"on_surface", onSurface,
			"target", target,
			"has_target", hasTarget,
			"destination", dest,
			"has_destination", hasDest,
			"requests", pursuer.Requests(),
		)
	})
}
