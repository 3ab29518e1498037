package sim

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
	"github.com/milk9111/firefight/ecs/system"
	"github.com/milk9111/firefight/nav"
	"github.com/milk9111/firefight/physics"
	"github.com/milk9111/firefight/prefabs"
	"github.com/pkg/errors"
)

const defaultImpactLifetime = 500 * time.Millisecond

var logger = common.NewLogger("sim")

// Simulation owns the ECS world, the collision and navigation backends and
// the per-tick systems. It is single-threaded: call Step, the input methods
// and ApplyReload from one goroutine.
type Simulation struct {
	Catalog *prefabs.Catalog
	World   *ecs.World
	Clock   *common.Clock
	Physics *physics.World
	Nav     *nav.Grid
	Emitter *combat.CombatEventEmitter

	rng       *rand.Rand
	resolver  *combat.HitResolver
	fire      *system.FireControlSystem
	despawn   *system.DespawnSystem
	scheduler *ecs.Scheduler
	effects   *effectSink

	player ecs.Entity
	stats  Stats
}

// New builds a simulation from a catalog. seed overrides the arena seed when
// non-zero.
func New(cat *prefabs.Catalog, seed int64) (*Simulation, error) {
	if cat == nil {
		return nil, errors.New("sim: nil catalog")
	}
	arena := cat.Arena
	if seed == 0 {
		seed = arena.Seed
	}

	s := &Simulation{
		Catalog: cat,
		World:   ecs.NewWorld(),
		Clock:   common.NewClock(arena.TickRate),
		Physics: physics.NewWorld(),
		Nav:     nav.NewGrid(arena.Nav.Origin.Vec(), arena.Nav.CellSize, arena.Nav.Width, arena.Nav.Depth),
		Emitter: &combat.CombatEventEmitter{},
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.Physics.FloorY = arena.Nav.Origin.Vec().Y()

	lifetime := arena.ImpactSeconds.Duration()
	if lifetime <= 0 {
		lifetime = defaultImpactLifetime
	}
	s.effects = &effectSink{world: s.World, clock: s.Clock, lifetime: lifetime}
	s.resolver = combat.NewHitResolver(s.Physics, s, s.effects)
	s.resolver.Emitter = s.Emitter
	s.Emitter.Subscribe(s.stats.record)
	s.Emitter.Subscribe(func(evt combat.CombatEvent) {
		s.World.Events().Push(ecs.Event{Type: string(evt.Type), Data: evt})
	})

	s.buildArena()
	if err := s.spawnPlayer(); err != nil {
		return nil, err
	}

	s.fire = system.NewFireControlSystem(s.Clock, s.rng, s.resolver, s.Physics, s.Emitter)
	s.setProjectileRadii()
	s.despawn = system.NewDespawnSystem(s.Physics, s.Nav)
	s.scheduler = ecs.NewScheduler(
		system.NewInputSystem(s.Clock, s.Emitter),
		s.fire,
		system.NewPursuitSystem(s.Clock, s.Nav, s, s),
		system.NewChaseSystem(s.Clock, s, s),
		system.NewNavigationSystem(s.Clock, s.Nav),
		system.NewAttachmentSystem(),
		system.NewPhysicsSystem(s.Clock, s.Physics),
		system.NewProjectileSystem(s.Clock, s.Physics, s, s.effects, s.Emitter),
		s.despawn,
		system.NewTTLSystem(s.Clock),
		system.NewAgentDiagnosticsSystem(s.Clock, s.Nav),
	)

	logger.Info("simulation ready", "arena", arena.Name, "seed", seed, "tick_rate", arena.TickRate)
	return s, nil
}

// Step runs one fixed tick and advances the clock.
func (s *Simulation) Step() {
	s.scheduler.Update(s.World)
	s.Clock.Advance()
}

// Run steps n ticks.
func (s *Simulation) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func (s *Simulation) Now() time.Duration {
	return s.Clock.Now()
}

// Stats returns the running combat totals.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// DrainEvents returns the combat events queued since the last drain.
func (s *Simulation) DrainEvents() []combat.CombatEvent {
	queued := s.World.Events().Drain()
	out := make([]combat.CombatEvent, 0, len(queued))
	for _, evt := range queued {
		if ce, ok := evt.Data.(combat.CombatEvent); ok {
			out = append(out, ce)
		}
	}
	return out
}

// Player returns the player entity; it is dead once the player was killed.
func (s *Simulation) Player() ecs.Entity {
	return s.player
}

func (s *Simulation) buildArena() {
	arena := s.Catalog.Arena
	for _, wall := range arena.Walls {
		s.Physics.AddStaticBox(0, wall.Min.Vec(), wall.Max.Vec())
		s.Nav.BlockBox(wall.Min.Vec(), wall.Max.Vec())
	}

	for _, prop := range arena.Props {
		s.spawnProp(prop)
	}

	for _, sensor := range arena.Sensors {
		e := ecs.CreateEntity(s.World)
		_ = ecs.Add(s.World, e, component.TransformComponent.Kind(), &component.Transform{Position: sensor.Position.Vec()})
		_ = ecs.Add(s.World, e, component.RoleComponent.Kind(), &component.Role{Name: sensor.Name})
		_ = ecs.Add(s.World, e, component.ColliderComponent.Kind(), &component.Collider{
			Radius: sensor.Radius,
			Height: sensor.Height,
			Layer:  combat.LayerProp,
			Sensor: true,
		})
	}
}

func (s *Simulation) spawnProp(spec prefabs.PropSpec) ecs.Entity {
	e := ecs.CreateEntity(s.World)
	pos := spec.Position.Vec()
	half := mgl64.Vec3{spec.HalfX, 0, spec.HalfZ}
	min, max := pos.Sub(half), pos.Add(half).Add(mgl64.Vec3{0, spec.Height, 0})

	target := combat.NewDestructible(spec.Durability, spec.Armor)
	target.OnBreak = func(point, normal mgl64.Vec3) {
		s.unblock(min, max)
		s.kill(e, point, normal)
	}
	_ = ecs.Add(s.World, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	_ = ecs.Add(s.World, e, component.PropTagComponent.Kind(), &component.PropTag{})
	_ = ecs.Add(s.World, e, component.RoleComponent.Kind(), &component.Role{Name: spec.Name})
	_ = ecs.Add(s.World, e, component.DamageReceiverComponent.Kind(), &component.DamageReceiver{Target: target})
	_ = ecs.Add(s.World, e, component.ColliderComponent.Kind(), &component.Collider{
		HalfX:  spec.HalfX,
		HalfZ:  spec.HalfZ,
		Height: spec.Height,
		Layer:  combat.LayerProp,
	})
	s.Nav.BlockBox(min, max)
	return e
}

func (s *Simulation) unblock(min, max mgl64.Vec3) {
	lo, hi := s.Nav.CellAt(min), s.Nav.CellAt(max)
	for z := lo.Z; z <= hi.Z; z++ {
		for x := lo.X; x <= hi.X; x++ {
			s.Nav.SetBlocked(x, z, false)
		}
	}
	// walls sharing those cells stay blocked
	for _, wall := range s.Catalog.Arena.Walls {
		s.Nav.BlockBox(wall.Min.Vec(), wall.Max.Vec())
	}
}

func (s *Simulation) spawnPlayer() error {
	spec := s.Catalog.Player
	weapons := make([]*combat.Weapon, 0, len(spec.Loadout))
	for _, name := range spec.Loadout {
		cfg, ok := s.Catalog.Weapon(name)
		if !ok {
			return errors.Wrapf(combat.ErrInvalidWeapon, "sim: player weapon %q", name)
		}
		w, err := combat.NewWeapon(cfg)
		if err != nil {
			return errors.Wrapf(err, "sim: player weapon %q", name)
		}
		weapons = append(weapons, w)
	}

	var muzzle *mgl64.Vec3
	if spec.MuzzleOffset != nil {
		v := spec.MuzzleOffset.Vec()
		muzzle = &v
	}

	e := ecs.CreateEntity(s.World)
	health := combat.NewHealth(spec.Health)
	health.OnDamage = func(h *combat.Health, amount float64) {
		logger.Debug("player hurt", "amount", amount, "health", h.CurrentHealth())
	}
	health.OnDeath = func(point, normal mgl64.Vec3) { s.kill(e, point, normal) }

	_ = ecs.Add(s.World, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(s.World, e, component.RoleComponent.Kind(), &component.Role{Name: spec.Role})
	_ = ecs.Add(s.World, e, component.TransformComponent.Kind(), &component.Transform{Position: spec.Spawn.Vec()})
	_ = ecs.Add(s.World, e, component.InputComponent.Kind(), component.NewInput())
	_ = ecs.Add(s.World, e, component.DamageReceiverComponent.Kind(), &component.DamageReceiver{Target: health})
	_ = ecs.Add(s.World, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius: spec.Radius,
		Height: spec.Height,
		Layer:  combat.LayerPlayer,
	})
	_ = ecs.Add(s.World, e, component.ArmoryComponent.Kind(), &component.Armory{
		Loadout:      combat.NewLoadout(weapons...),
		Reticle:      combat.NewReticle(),
		EyeHeight:    spec.EyeHeight,
		MuzzleOffset: muzzle,
	})
	s.player = e
	return nil
}

func (s *Simulation) setProjectileRadii() {
	radii := make(map[string]float64, len(s.Catalog.ProjectileFor))
	for weapon, tmpl := range s.Catalog.ProjectileFor {
		radii[weapon] = tmpl.Radius
	}
	s.fire.ProjectileRadius = radii
}

// kill handles a death: event, effect, and immediate removal of the entity
// and anything attached to it. Weak references to it fail from here on.
func (s *Simulation) kill(e ecs.Entity, point, normal mgl64.Vec3) {
	if !ecs.IsAlive(s.World, e) {
		return
	}
	id := combat.EntityID(e)
	s.Emitter.Emit(combat.CombatEvent{Type: combat.EventDeath, Target: id, Point: point, Normal: normal})
	s.effects.SpawnDeath(point, normal)

	for _, child := range ecs.Query(s.World, component.ParentComponent.Kind()) {
		if p, ok := ecs.Get(s.World, child, component.ParentComponent.Kind()); ok && p.Entity == id {
			s.despawn.Remove(s.World, child)
		}
	}
	s.despawn.Remove(s.World, e)
	logger.Info("entity killed", "entity", e, "at", point)
}
