package combat

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/common"
)

// Sampler yields uniform values in [0, 1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// ApplySpread perturbs forward inside a cone of half-angle degrees. The
// offset is a uniform point in the unit disk scaled by tan(angle) along the
// right/up basis, so the cone is the same for every field of view.
// A non-positive angle or a nil sampler returns forward unchanged.
func ApplySpread(forward mgl64.Vec3, degrees float64, right, up mgl64.Vec3, rng Sampler) mgl64.Vec3 {
	if degrees <= 0 || rng == nil {
		return forward
	}
	x, y := sampleUnitDisk(rng)
	r := math.Tan(mgl64.DegToRad(degrees))
	dir := forward.Add(right.Mul(x * r)).Add(up.Mul(y * r))
	return common.SafeNormalize(dir, forward)
}

func sampleUnitDisk(rng Sampler) (float64, float64) {
	r := math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	return r * math.Cos(theta), r * math.Sin(theta)
}

// SpreadToPixels converts an angular offset to a screen-space radius for a
// vertical field of view fovDegrees and a viewport viewportHeight pixels
// tall.
func SpreadToPixels(degrees, fovDegrees, viewportHeight float64) float64 {
	rad := mgl64.DegToRad(math.Max(0, degrees))
	f := math.Tan(0.5 * mgl64.DegToRad(fovDegrees))
	return (math.Tan(rad) / math.Max(0.0001, f)) * (viewportHeight * 0.5)
}

// Reticle eases a crosshair gap toward the spread cone plus a firing bloom.
type Reticle struct {
	BaseGap     float64
	FiringBloom float64
	GapEase     float64
	BloomEase   float64

	gap   float64
	bloom float64
}

func NewReticle() *Reticle {
	return &Reticle{BaseGap: 8, FiringBloom: 10, GapEase: 18, BloomEase: 18}
}

// Update advances the easing by dt seconds and returns the new gap.
func (r *Reticle) Update(dt, spreadDegrees, fovDegrees, viewportHeight float64, firing bool) float64 {
	if r == nil {
		return 0
	}
	targetBloom := 0.0
	if firing {
		targetBloom = r.FiringBloom
	}
	r.bloom = common.Lerp(r.bloom, targetBloom, common.EaseFactor(r.BloomEase, dt))
	target := r.BaseGap + SpreadToPixels(spreadDegrees, fovDegrees, viewportHeight) + r.bloom
	r.gap = common.Lerp(r.gap, target, common.EaseFactor(r.GapEase, dt))
	return r.gap
}

func (r *Reticle) Gap() float64 {
	if r == nil {
		return 0
	}
	return r.gap
}
