package combat

import "github.com/go-gl/mathgl/mgl64"

//go:generate go tool mockgen -destination=./mocks/services_mock.go -package=mocks . Collision,Navigator,RoleLookup,Positions,TargetLookup,Effects,Damageable

// EntityID identifies a simulated entity across service boundaries. Zero
// means no entity (open floor, level geometry).
type EntityID uint64

// Layer is a collision category bit.
type Layer uint32

const (
	LayerWorld Layer = 1 << iota
	LayerPlayer
	LayerHostile
	LayerProp
	LayerProjectile

	LayerAll = LayerWorld | LayerPlayer | LayerHostile | LayerProp | LayerProjectile
)

// CollisionFilter restricts a query to the layers in Mask and skips Ignore.
type CollisionFilter struct {
	Mask   Layer
	Ignore EntityID
}

// ShotFilter hits everything except the shooter.
func ShotFilter(shooter EntityID) CollisionFilter {
	return CollisionFilter{Mask: LayerAll &^ LayerProjectile, Ignore: shooter}
}

// RayHit is the first surface reported by a raycast.
type RayHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Entity   EntityID
	Distance float64
}

// Contact is one physical contact report for Self against Other. Backends
// may report the same touch several times in a step.
type Contact struct {
	Self   EntityID
	Other  EntityID
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Sensor bool
}

// Collision answers ray queries against the world.
type Collision interface {
	Raycast(origin, direction mgl64.Vec3, maxDistance float64, filter CollisionFilter) (RayHit, bool)
}

// Navigator is the navigation mesh service.
type Navigator interface {
	SampleNearestSurfacePoint(pos mgl64.Vec3, radius float64) (mgl64.Vec3, bool)
	SetDestination(agent EntityID, point mgl64.Vec3) bool
	IsOnSurface(agent EntityID) bool
	Warp(agent EntityID, point mgl64.Vec3) bool
}

// RoleLookup finds an entity by role tag, e.g. "Player".
type RoleLookup interface {
	FindEntityByRole(role string) (EntityID, bool)
}

// Positions resolves a weak entity reference. ok is false once the entity
// no longer exists.
type Positions interface {
	Position(e EntityID) (mgl64.Vec3, bool)
}

// TargetLookup finds the Damageable on an entity or its nearest ancestor.
type TargetLookup interface {
	FindDamageable(e EntityID) (Damageable, bool)
}

// Effects receives cosmetic spawn requests. Nothing it does feeds back into
// the simulation.
type Effects interface {
	SpawnImpact(point, normal mgl64.Vec3, struck bool)
	SpawnDeath(point, normal mgl64.Vec3)
}

// NopEffects discards every request.
type NopEffects struct{}

func (NopEffects) SpawnImpact(point, normal mgl64.Vec3, struck bool) {}
func (NopEffects) SpawnDeath(point, normal mgl64.Vec3)               {}
