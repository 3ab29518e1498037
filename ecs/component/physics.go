package component

import "github.com/milk9111/firefight/combat"

// Collider is the collision footprint of an entity. A positive Radius makes
// a cylinder, otherwise HalfX and HalfZ describe a box.
type Collider struct {
	Radius float64
	HalfX  float64
	HalfZ  float64
	Height float64
	Layer  combat.Layer
	Sensor bool

	// Registered is set once the physics world owns a body for the entity.
	Registered bool
}

var ColliderComponent = NewComponent[Collider]()
