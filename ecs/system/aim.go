package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs/component"
)

// AimFor builds the shooter's aim from its transform and armory: the eye
// sits EyeHeight above the base position and looks along yaw/pitch.
func AimFor(t *component.Transform, a *component.Armory) combat.Aim {
	if t == nil {
		return combat.NewAim(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1})
	}
	eye := 0.0
	if a != nil {
		eye = a.EyeHeight
	}
	origin := t.Position.Add(common.WorldUp.Mul(eye))
	aim := combat.NewAim(origin, common.ForwardFromYawPitch(t.Yaw, t.Pitch))
	if a != nil && a.MuzzleOffset != nil {
		off := *a.MuzzleOffset
		muzzle := origin.
			Add(aim.Right.Mul(off.X())).
			Add(aim.Up.Mul(off.Y())).
			Add(aim.Forward.Mul(off.Z()))
		aim.Muzzle = &muzzle
	}
	return aim
}
