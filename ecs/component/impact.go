package component

import "github.com/go-gl/mathgl/mgl64"

// Impact is a short-lived visual marker left by a hit or a death.
type Impact struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Struck bool
	Death  bool
}

var ImpactComponent = NewComponent[Impact]()
