package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is an entity's base position plus view angles in radians.
// Yaw 0 looks down -Z.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

var TransformComponent = NewComponent[Transform]()
