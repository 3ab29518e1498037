package combat

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/common"
)

// Chaser moves straight at a target on the ground plane without the
// navigation service. Height is ignored.
type Chaser struct {
	MoveSpeed    float64
	StopDistance float64
}

func DefaultChaser() Chaser {
	return Chaser{MoveSpeed: 3, StopDistance: 1}
}

// Velocity returns the XZ velocity toward target, zero inside StopDistance.
func (c Chaser) Velocity(self, target mgl64.Vec3) mgl64.Vec3 {
	to := common.FlattenXZ(target.Sub(self))
	if to.Dot(to) <= c.StopDistance*c.StopDistance {
		return mgl64.Vec3{}
	}
	return to.Normalize().Mul(c.MoveSpeed)
}

// Step moves self toward target by dt seconds without overshooting the stop
// distance.
func (c Chaser) Step(self, target mgl64.Vec3, dt float64) mgl64.Vec3 {
	v := c.Velocity(self, target)
	if v.Len() == 0 || dt <= 0 {
		return self
	}
	dist := common.FlattenXZ(target.Sub(self)).Len() - c.StopDistance
	move := v.Mul(dt)
	if move.Len() > dist {
		move = move.Normalize().Mul(dist)
	}
	return self.Add(move)
}
