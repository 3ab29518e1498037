package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// Player intent setters. They write the player's Input component and take
// effect on the next Step; once the player is dead they do nothing.

func (s *Simulation) input() *component.Input {
	in, ok := ecs.Get(s.World, s.player, component.InputComponent.Kind())
	if !ok {
		return nil
	}
	return in
}

func (s *Simulation) SetTrigger(held bool) {
	if in := s.input(); in != nil {
		if held && !in.Trigger {
			in.Pressed = true
		}
		in.Trigger = held
	}
}

func (s *Simulation) RequestReload() {
	if in := s.input(); in != nil {
		in.Reload = true
	}
}

// SwitchWeapon selects a loadout slot; out-of-range slots are clamped.
func (s *Simulation) SwitchWeapon(slot int) {
	if slot < 0 {
		slot = 0
	}
	if in := s.input(); in != nil {
		in.Switch = slot
	}
}

// SetAim sets the view angles in radians. Yaw 0 looks down -Z.
func (s *Simulation) SetAim(yaw, pitch float64) {
	if in := s.input(); in != nil {
		in.Yaw = yaw
		in.Pitch = pitch
	}
}

// SetMove sets the movement direction on the ground plane. dir is clamped to
// unit length and scaled by the player's move speed.
func (s *Simulation) SetMove(dir mgl64.Vec3) {
	in := s.input()
	if in == nil {
		return
	}
	dir = mgl64.Vec3{dir.X(), 0, dir.Z()}
	if l := dir.Len(); l > 1 {
		dir = dir.Mul(1 / l)
	}
	in.Move = dir.Mul(s.Catalog.Player.MoveSpeed)
}

// AimAt turns the player to look at a world point.
func (s *Simulation) AimAt(point mgl64.Vec3) {
	t, ok := ecs.Get(s.World, s.player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	eye := t.Position.Add(mgl64.Vec3{0, s.Catalog.Player.EyeHeight, 0})
	yaw, pitch := common.YawPitchFromDirection(point.Sub(eye))
	s.SetAim(yaw, pitch)
}
