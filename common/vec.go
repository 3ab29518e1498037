package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the +Y axis. The ground plane is XZ.
var WorldUp = mgl64.Vec3{0, 1, 0}

// FlattenXZ drops the vertical component.
func FlattenXZ(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// SafeNormalize returns v normalized, or fallback when v is too short.
func SafeNormalize(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if v.Len() < 1e-9 {
		return fallback
	}
	return v.Normalize()
}

// ForwardFromYawPitch builds a unit forward vector. Yaw 0 looks down -Z.
func ForwardFromYawPitch(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * cp,
		math.Sin(pitch),
		-math.Cos(yaw) * cp,
	}.Normalize()
}

// Basis returns the right and up vectors of a camera looking along forward.
func Basis(forward mgl64.Vec3) (right, up mgl64.Vec3) {
	right = forward.Cross(WorldUp)
	if right.Len() < 1e-9 {
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up = right.Cross(forward).Normalize()
	return right, up
}

// YawPitchFromDirection is the inverse of ForwardFromYawPitch. A zero
// direction gives zero angles.
func YawPitchFromDirection(dir mgl64.Vec3) (yaw, pitch float64) {
	l := dir.Len()
	if l < 1e-9 {
		return 0, 0
	}
	yaw = math.Atan2(dir.X(), -dir.Z())
	pitch = math.Asin(math.Max(-1, math.Min(1, dir.Y()/l)))
	return yaw, pitch
}
