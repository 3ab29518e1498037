package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
)

// Armory carries a shooter's weapons and aim state.
type Armory struct {
	Loadout *combat.Loadout
	Reticle *combat.Reticle

	// EyeHeight is added to the transform position to get the aim origin.
	EyeHeight float64
	// MuzzleOffset is the muzzle position in the aim basis (right, up,
	// forward). Nil fires from the fallback point ahead of the eye.
	MuzzleOffset *mgl64.Vec3

	// Firing is true on ticks where the active weapon released a shot.
	Firing bool
}

var ArmoryComponent = NewComponent[Armory]()
