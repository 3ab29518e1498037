package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/prefabs"
	"github.com/pkg/errors"
)

const defaultSpawnAttempts = 16

// Spawner samples hostile spawn points inside a box, away from the player.
type Spawner struct {
	Center            mgl64.Vec3
	Size              mgl64.Vec3
	Count             int
	MinPlayerDistance float64
	MaxAttempts       int
}

func NewSpawner(spec prefabs.SpawnSpec) *Spawner {
	return &Spawner{
		Center:            spec.Center.Vec(),
		Size:              spec.Size.Vec(),
		Count:             spec.Count,
		MinPlayerDistance: spec.MinPlayerDistance,
		MaxAttempts:       spec.MaxAttempts,
	}
}

// Sample returns a point on the player's floor at least MinPlayerDistance
// from the player on the ground plane. walkable may be nil.
func (sp *Spawner) Sample(rng *rand.Rand, player mgl64.Vec3, walkable func(mgl64.Vec3) bool) (mgl64.Vec3, bool) {
	attempts := sp.MaxAttempts
	if attempts <= 0 {
		attempts = defaultSpawnAttempts
	}
	for i := 0; i < attempts; i++ {
		p := mgl64.Vec3{
			sp.Center.X() + (rng.Float64()-0.5)*sp.Size.X(),
			player.Y(),
			sp.Center.Z() + (rng.Float64()-0.5)*sp.Size.Z(),
		}
		dx, dz := p.X()-player.X(), p.Z()-player.Z()
		if math.Hypot(dx, dz) < sp.MinPlayerDistance {
			continue
		}
		if walkable != nil && !walkable(p) {
			continue
		}
		return p, true
	}
	return mgl64.Vec3{}, false
}

// SpawnWave spawns the arena's hostile wave and returns the new entities.
// Points that cannot be sampled are skipped with a warning.
func (s *Simulation) SpawnWave() []ecs.Entity {
	sp := NewSpawner(s.Catalog.Arena.Spawn)
	anchor := sp.Center
	if pos, ok := s.Position(combat.EntityID(s.player)); ok {
		anchor = pos
	}

	var spawned []ecs.Entity
	for i := 0; i < sp.Count; i++ {
		p, ok := sp.Sample(s.rng, anchor, s.Nav.IsWalkable)
		if !ok {
			logger.Warn("no spawn point found", "attempts", sp.MaxAttempts, "min_distance", sp.MinPlayerDistance)
			continue
		}
		e, err := s.SpawnHostile(p)
		if err != nil {
			logger.Warn("spawn failed", "err", err)
			continue
		}
		spawned = append(spawned, e)
	}
	return spawned
}

// SpawnHostile creates a hostile at pos using the catalog's hostile prefab.
// A pursuer with no nav surface in reach is still spawned and stays idle.
func (s *Simulation) SpawnHostile(pos mgl64.Vec3) (ecs.Entity, error) {
	spec := s.Catalog.Hostile
	if spec.Health <= 0 {
		return 0, errors.Errorf("sim: hostile %s has no health", spec.Name)
	}

	e := ecs.CreateEntity(s.World)
	id := combat.EntityID(e)
	health := combat.NewHealth(spec.Health)
	health.OnDeath = func(point, normal mgl64.Vec3) { s.kill(e, point, normal) }

	role := spec.Role
	if role == "" {
		role = "Hostile"
	}
	transform := &component.Transform{Position: pos}
	_ = ecs.Add(s.World, e, component.HostileTagComponent.Kind(), &component.HostileTag{})
	_ = ecs.Add(s.World, e, component.RoleComponent.Kind(), &component.Role{Name: role})
	_ = ecs.Add(s.World, e, component.TransformComponent.Kind(), transform)
	_ = ecs.Add(s.World, e, component.DamageReceiverComponent.Kind(), &component.DamageReceiver{Target: health})
	_ = ecs.Add(s.World, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius: spec.Radius,
		Height: spec.Height,
		Layer:  combat.LayerHostile,
	})

	switch spec.Movement {
	case prefabs.MovementChase:
		_ = ecs.Add(s.World, e, component.ChaseComponent.Kind(), &component.Chase{Chaser: spec.Chase.Chaser()})
	default:
		s.Nav.AddAgent(id, pos, spec.NavSpeed)
		pursuer := combat.NewPursuer(id, spec.Pursuit.Config())
		if err := pursuer.Place(s.Nav, pos); err != nil {
			logger.Warn("hostile unplaced", "entity", e, "err", err)
		} else if p, ok := s.Nav.AgentPosition(id); ok {
			transform.Position = p
		}
		_ = ecs.Add(s.World, e, component.NavAgentComponent.Kind(), &component.NavAgent{Speed: spec.NavSpeed})
		_ = ecs.Add(s.World, e, component.PursuitComponent.Kind(), &component.Pursuit{Controller: pursuer})
		_ = ecs.Add(s.World, e, component.AgentDiagnosticsComponent.Kind(), &component.AgentDiagnostics{
			Interval: spec.DiagnosticsSeconds.Duration(),
		})
	}

	for _, hb := range spec.Hitboxes {
		s.spawnHitbox(id, transform, hb)
	}

	logger.Debug("hostile spawned", "entity", e, "at", transform.Position, "movement", spec.Movement)
	return e, nil
}

func (s *Simulation) spawnHitbox(parent combat.EntityID, at *component.Transform, spec prefabs.HitboxSpec) {
	e := ecs.CreateEntity(s.World)
	offset := spec.Offset.Vec()
	_ = ecs.Add(s.World, e, component.RoleComponent.Kind(), &component.Role{Name: spec.Name})
	_ = ecs.Add(s.World, e, component.ParentComponent.Kind(), &component.Parent{Entity: parent, Offset: offset})
	_ = ecs.Add(s.World, e, component.TransformComponent.Kind(), &component.Transform{Position: at.Position.Add(offset), Yaw: at.Yaw})
	_ = ecs.Add(s.World, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius: spec.Radius,
		Height: spec.Height,
		Layer:  combat.LayerHostile,
	})
}
