package combat

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// PursuitState is the pursuit controller state.
type PursuitState int

const (
	Unplaced PursuitState = iota
	PlacedNoTarget
	Tracking
)

func (s PursuitState) String() string {
	switch s {
	case Unplaced:
		return "unplaced"
	case PlacedNoTarget:
		return "placed_no_target"
	case Tracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// PursuitConfig tunes a Pursuer.
type PursuitConfig struct {
	// SnapRadius bounds the search for a nav surface at spawn.
	SnapRadius float64
	// DestinationRadius bounds snapping the target position onto the surface.
	DestinationRadius float64
	RepathInterval    time.Duration
	// TargetRoles are tried in order when acquiring a target.
	TargetRoles []string
}

func DefaultPursuitConfig() PursuitConfig {
	return PursuitConfig{
		SnapRadius:        3,
		DestinationRadius: 2,
		RepathInterval:    200 * time.Millisecond,
		TargetRoles:       []string{"Player", "player"},
	}
}

// Pursuer drives one hostile agent toward a target through the navigation
// service. The target is held by id only and re-checked every update.
type Pursuer struct {
	Config PursuitConfig
	Agent  EntityID

	state        PursuitState
	target       EntityID
	nextRepathAt time.Duration
	destination  mgl64.Vec3
	hasDest      bool
	requests     int
}

func NewPursuer(agent EntityID, cfg PursuitConfig) *Pursuer {
	def := DefaultPursuitConfig()
	if cfg.SnapRadius <= 0 {
		cfg.SnapRadius = def.SnapRadius
	}
	if cfg.DestinationRadius < 0 {
		cfg.DestinationRadius = 0
	}
	if cfg.RepathInterval <= 0 {
		cfg.RepathInterval = def.RepathInterval
	}
	if len(cfg.TargetRoles) == 0 {
		cfg.TargetRoles = def.TargetRoles
	}
	return &Pursuer{Config: cfg, Agent: agent}
}

func (p *Pursuer) State() PursuitState {
	if p == nil {
		return Unplaced
	}
	return p.state
}

// Target returns the tracked entity, if any.
func (p *Pursuer) Target() (EntityID, bool) {
	if p == nil || p.state != Tracking {
		return 0, false
	}
	return p.target, true
}

// Destination returns the last requested destination.
func (p *Pursuer) Destination() (mgl64.Vec3, bool) {
	if p == nil {
		return mgl64.Vec3{}, false
	}
	return p.destination, p.hasDest
}

// Requests counts destination requests issued so far.
func (p *Pursuer) Requests() int {
	if p == nil {
		return 0
	}
	return p.requests
}

// Place moves the agent onto the nearest navigable point within SnapRadius.
// When none exists the agent stays Unplaced for good and ErrNoNavSurface is
// returned for the caller to report.
func (p *Pursuer) Place(nav Navigator, pos mgl64.Vec3) error {
	if p == nil || p.state != Unplaced {
		return nil
	}
	if nav == nil {
		return errors.Wrap(ErrNoNavSurface, "no navigation service")
	}
	point, ok := nav.SampleNearestSurfacePoint(pos, p.Config.SnapRadius)
	if !ok {
		return errors.Wrapf(ErrNoNavSurface, "agent %d at %v radius %g", p.Agent, pos, p.Config.SnapRadius)
	}
	if !nav.Warp(p.Agent, point) {
		return errors.Wrapf(ErrNoNavSurface, "agent %d warp to %v rejected", p.Agent, point)
	}
	p.state = PlacedNoTarget
	return nil
}

// SetTarget assigns a target directly, bypassing role lookup.
func (p *Pursuer) SetTarget(target EntityID, now time.Duration) {
	if p == nil || p.state == Unplaced || target == 0 {
		return
	}
	p.target = target
	p.state = Tracking
	p.nextRepathAt = now
}

// Update runs one tick of the controller.
func (p *Pursuer) Update(now time.Duration, nav Navigator, roles RoleLookup, positions Positions) {
	if p == nil || nav == nil {
		return
	}
	switch p.state {
	case Unplaced:
		return
	case PlacedNoTarget:
		if !p.acquire(now, roles) {
			return
		}
	}

	var targetPos mgl64.Vec3
	ok := false
	if positions != nil {
		targetPos, ok = positions.Position(p.target)
	}
	if !ok {
		logger.Debug("pursuit target lost", "agent", p.Agent, "target", p.target)
		p.target = 0
		p.state = PlacedNoTarget
		return
	}
	if now < p.nextRepathAt || !nav.IsOnSurface(p.Agent) {
		return
	}

	dest := targetPos
	if p.Config.DestinationRadius > 0 {
		if snapped, ok := nav.SampleNearestSurfacePoint(targetPos, p.Config.DestinationRadius); ok {
			dest = snapped
		}
	}
	if nav.SetDestination(p.Agent, dest) {
		p.destination = dest
		p.hasDest = true
	}
	p.requests++
	p.nextRepathAt = now + p.Config.RepathInterval
}

func (p *Pursuer) acquire(now time.Duration, roles RoleLookup) bool {
	if roles == nil {
		return false
	}
	for _, role := range p.Config.TargetRoles {
		if e, ok := roles.FindEntityByRole(role); ok && e != 0 && e != p.Agent {
			p.SetTarget(e, now)
			return true
		}
	}
	return false
}
