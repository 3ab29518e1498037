package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
)

const (
	collisionTypeWorld cp.CollisionType = iota + 1
	collisionTypeActor
	collisionTypeProjectile
)

// DefaultProjectileRadius is the collision radius of a projectile body.
const DefaultProjectileRadius = 0.05

var logger = common.NewLogger("physics")

// Shape describes an actor or prop footprint. A positive Radius makes a
// cylinder, otherwise HalfX/HalfZ make a box. Height extends up from the
// body's base position.
type Shape struct {
	Radius float64
	HalfX  float64
	HalfZ  float64
	Height float64
	Layer  combat.Layer
	Sensor bool
}

// Body is one registered collision body.
type Body struct {
	Entity combat.EntityID
	Layer  combat.Layer

	body  *cp.Body
	shape *cp.Shape

	// vertical span of the body; the chipmunk space only knows about XZ
	minY float64
	maxY float64

	// projectiles integrate their own height
	y  float64
	vy float64
}

// World is a collision service backed by a Chipmunk space. The space's X/Y
// plane is the simulation's X/Z ground plane; every shape carries a vertical
// span so rays and projectiles can pass over or under it.
type World struct {
	space *cp.Space

	bodies        map[combat.EntityID]*Body
	shapeToEntity map[*cp.Shape]combat.EntityID
	shapeToBody   map[*cp.Shape]*Body
	contacts      []combat.Contact

	// FloorY is the height of the walkable floor plane.
	FloorY float64
}

// NewWorld creates an empty collision world with a floor at y=0.
func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	w := &World{
		space:         space,
		bodies:        make(map[combat.EntityID]*Body),
		shapeToEntity: make(map[*cp.Shape]combat.EntityID),
		shapeToBody:   make(map[*cp.Shape]*Body),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddStaticBox adds level geometry spanning min..max. entity may be zero.
func (w *World) AddStaticBox(entity combat.EntityID, min, max mgl64.Vec3) {
	if w == nil || w.space == nil {
		return
	}
	bb := cp.BB{L: min.X(), B: min.Z(), R: max.X(), T: max.Z()}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeWorld)
	shape.SetFilter(layerFilter(combat.LayerWorld, 0))
	w.space.AddShape(shape)

	b := &Body{Entity: entity, Layer: combat.LayerWorld, shape: shape, minY: min.Y(), maxY: max.Y()}
	w.shapeToBody[shape] = b
	if entity != 0 {
		w.shapeToEntity[shape] = entity
	}
}

// AddActor registers a kinematic body whose base sits at pos.
func (w *World) AddActor(entity combat.EntityID, pos mgl64.Vec3, s Shape) *Body {
	if w == nil || w.space == nil || entity == 0 {
		return nil
	}
	w.Remove(entity)

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
	var shape *cp.Shape
	if s.Radius > 0 {
		shape = cp.NewCircle(body, s.Radius, cp.Vector{})
	} else {
		hx, hz := math.Max(s.HalfX, 0.05), math.Max(s.HalfZ, 0.05)
		shape = cp.NewBox(body, hx*2, hz*2, 0)
	}
	layer := s.Layer
	if layer == 0 {
		layer = combat.LayerProp
	}
	shape.SetCollisionType(collisionTypeActor)
	shape.SetSensor(s.Sensor)
	shape.SetFilter(layerFilter(layer, uint(entity)))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	height := s.Height
	if height <= 0 {
		height = 1.8
	}
	b := &Body{Entity: entity, Layer: layer, body: body, shape: shape, minY: pos.Y(), maxY: pos.Y() + height}
	w.bodies[entity] = b
	w.shapeToEntity[shape] = entity
	w.shapeToBody[shape] = b
	return b
}

// AddProjectile registers a dynamic body that moves with vel. It never
// collides with owner or with other projectiles.
func (w *World) AddProjectile(entity, owner combat.EntityID, pos, vel mgl64.Vec3, radius float64) *Body {
	if w == nil || w.space == nil || entity == 0 {
		return nil
	}
	w.Remove(entity)
	if radius <= 0 {
		radius = DefaultProjectileRadius
	}

	body := cp.NewBody(1, cp.MomentForCircle(1, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})
	body.SetVelocityVector(cp.Vector{X: vel.X(), Y: vel.Z()})
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetCollisionType(collisionTypeProjectile)
	filter := layerFilter(combat.LayerProjectile, uint(owner))
	filter.Mask &^= uint(combat.LayerProjectile)
	shape.SetFilter(filter)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{
		Entity: entity,
		Layer:  combat.LayerProjectile,
		body:   body,
		shape:  shape,
		minY:   pos.Y() - radius,
		maxY:   pos.Y() + radius,
		y:      pos.Y(),
		vy:     vel.Y(),
	}
	w.bodies[entity] = b
	w.shapeToEntity[shape] = entity
	w.shapeToBody[shape] = b
	return b
}

// Remove drops an entity's body. It must not be called during Step.
func (w *World) Remove(entity combat.EntityID) {
	if w == nil {
		return
	}
	b, ok := w.bodies[entity]
	if !ok {
		return
	}
	delete(w.bodies, entity)
	delete(w.shapeToEntity, b.shape)
	delete(w.shapeToBody, b.shape)
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	logger.Debug("body removed", "entity", entity, "layer", b.Layer)
}

// Has reports whether entity has a body.
func (w *World) Has(entity combat.EntityID) bool {
	if w == nil {
		return false
	}
	_, ok := w.bodies[entity]
	return ok
}

// MoveActor teleports a kinematic body to pos. dt is used to give the body
// a matching velocity so contacts see it moving.
func (w *World) MoveActor(entity combat.EntityID, pos mgl64.Vec3, dt float64) {
	b := w.body(entity)
	if b == nil || b.Layer == combat.LayerProjectile {
		return
	}
	prev := b.body.Position()
	next := cp.Vector{X: pos.X(), Y: pos.Z()}
	if dt > 0 {
		b.body.SetVelocityVector(next.Sub(prev).Mult(1 / dt))
	}
	b.body.SetPosition(next)
	// re-insert so the spatial index sees the new position before the next
	// query; kinematic bodies are only reindexed during Step otherwise
	w.space.RemoveShape(b.shape)
	w.space.AddShape(b.shape)

	height := b.maxY - b.minY
	b.minY = pos.Y()
	b.maxY = pos.Y() + height
}

// StopProjectile zeroes a projectile's velocity.
func (w *World) StopProjectile(entity combat.EntityID) {
	b := w.body(entity)
	if b == nil || b.Layer != combat.LayerProjectile {
		return
	}
	b.body.SetVelocityVector(cp.Vector{})
	b.vy = 0
}

// Position returns the body's base position.
func (w *World) Position(entity combat.EntityID) (mgl64.Vec3, bool) {
	b := w.body(entity)
	if b == nil {
		return mgl64.Vec3{}, false
	}
	p := b.body.Position()
	y := b.minY
	if b.Layer == combat.LayerProjectile {
		y = b.y
	}
	return mgl64.Vec3{p.X, y, p.Y}, true
}

// Step advances the space by dt seconds and records projectile contacts,
// including hits on the floor plane.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.sweepProjectiles(dt)
	w.space.Step(dt)

	for _, b := range w.bodies {
		if b.Layer != combat.LayerProjectile || b.vy == 0 {
			continue
		}
		b.y += b.vy * dt
		r := (b.maxY - b.minY) / 2
		b.minY, b.maxY = b.y-r, b.y+r
		if b.y <= w.FloorY {
			p := b.body.Position()
			w.contacts = append(w.contacts, combat.Contact{
				Self:   b.Entity,
				Point:  mgl64.Vec3{p.X, w.FloorY, p.Y},
				Normal: common.WorldUp,
			})
		}
	}
}

// sweepProjectiles casts each moving projectile along this step's path so a
// fast body cannot skip past a thin target between two discrete steps. The
// earliest solid hit is recorded; the collision handlers may report the
// same touch again, which Projectile.OnContact absorbs.
func (w *World) sweepProjectiles(dt float64) {
	for _, b := range w.bodies {
		if b.Layer != combat.LayerProjectile {
			continue
		}
		start := b.body.Position()
		end := start.Add(b.body.Velocity().Mult(dt))
		dy := b.vy * dt
		if start.Distance(end) < 1e-9 {
			continue
		}

		limit := 1.0
		if dy < 0 && b.y+dy <= w.FloorY {
			// the floor check in Step reports this one
			limit = math.Max(0, (w.FloorY-b.y)/dy)
		}

		radius := (b.maxY - b.minY) / 2
		var hit *cp.Shape
		var point, normal cp.Vector
		hitAt := math.Inf(1)
		w.space.SegmentQuery(start, end, radius, b.shape.Filter, func(shape *cp.Shape, p, n cp.Vector, alpha float64, _ interface{}) {
			if shape == b.shape || shape.Sensor() || alpha > limit || alpha >= hitAt {
				return
			}
			other := w.shapeToBody[shape]
			if other == nil {
				return
			}
			if y := b.y + dy*alpha; y < other.minY || y > other.maxY {
				return
			}
			hit, hitAt, point, normal = shape, alpha, p, n
		}, nil)
		if hit == nil {
			continue
		}
		w.contacts = append(w.contacts, combat.Contact{
			Self:   b.Entity,
			Other:  w.shapeToEntity[hit],
			Point:  mgl64.Vec3{point.X, b.y + dy*hitAt, point.Y},
			Normal: mgl64.Vec3{normal.X, 0, normal.Y},
		})
	}
}

// Contacts returns and clears the contacts recorded since the last call.
func (w *World) Contacts() []combat.Contact {
	if w == nil || len(w.contacts) == 0 {
		return nil
	}
	out := w.contacts
	w.contacts = nil
	return out
}

func (w *World) body(entity combat.EntityID) *Body {
	if w == nil {
		return nil
	}
	return w.bodies[entity]
}

func (w *World) setupHandlers() {
	for _, other := range []cp.CollisionType{collisionTypeWorld, collisionTypeActor} {
		handler := w.space.NewCollisionHandler(collisionTypeProjectile, other)
		handler.UserData = w
		// Begin and PreSolve both report, so one touch is usually seen more
		// than once; Projectile.OnContact debounces.
		handler.BeginFunc = recordContact
		handler.PreSolveFunc = recordContact
	}
}

func recordContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	world, ok := userData.(*World)
	if !ok || world == nil {
		return true
	}
	shapeA, shapeB := arb.Shapes()
	proj := world.shapeToBody[shapeA]
	other := world.shapeToBody[shapeB]
	if proj == nil || other == nil {
		return true
	}
	if proj.y < other.minY || proj.y > other.maxY {
		// passes over or under
		return false
	}

	point := shapeA.Body().Position()
	if set := arb.ContactPointSet(); set.Count > 0 {
		point = set.Points[0].PointA
	}
	n := arb.Normal().Neg()
	world.contacts = append(world.contacts, combat.Contact{
		Self:   proj.Entity,
		Other:  world.shapeToEntity[shapeB],
		Point:  mgl64.Vec3{point.X, proj.y, point.Y},
		Normal: mgl64.Vec3{n.X, 0, n.Y},
		Sensor: shapeB.Sensor(),
	})
	return true
}

func layerFilter(layer combat.Layer, group uint) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      group,
		Categories: uint(layer),
		Mask:       cp.ALL_CATEGORIES,
	}
}
