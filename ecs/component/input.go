package component

import "github.com/go-gl/mathgl/mgl64"

// Input is the per-tick intent for a controlled shooter.
type Input struct {
	Trigger bool
	// Pressed latches a press between ticks so a tap shorter than one tick
	// still reaches the weapon.
	Pressed bool
	Reload  bool
	// Switch selects a loadout slot when non-negative.
	Switch int
	// Move is the desired planar velocity in world units per second.
	Move  mgl64.Vec3
	Yaw   float64
	Pitch float64
}

var InputComponent = NewComponent[Input]()

// NewInput returns an idle input with no pending switch.
func NewInput() *Input {
	return &Input{Switch: -1}
}
