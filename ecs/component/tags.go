package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
)

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type HostileTag struct{}

var HostileTagComponent = NewComponent[HostileTag]()

type PropTag struct{}

var PropTagComponent = NewComponent[PropTag]()

type ProjectileTag struct{}

var ProjectileTagComponent = NewComponent[ProjectileTag]()

// Role is the tag other entities use to find this one, e.g. "Player".
type Role struct {
	Name string
}

var RoleComponent = NewComponent[Role]()

// Parent links a child collider (a hitbox, a prop part) to the entity that
// owns its Damageable.
type Parent struct {
	Entity combat.EntityID
	// Offset is added to the parent's position every tick.
	Offset mgl64.Vec3
}

var ParentComponent = NewComponent[Parent]()
