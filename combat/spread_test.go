package combat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySpreadZeroReturnsForward(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	forward := mgl64.Vec3{0.3, -0.2, -0.9}
	right, up := mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	for _, deg := range []float64{0, -3} {
		for i := 0; i < 100; i++ {
			assert.Equal(t, forward, ApplySpread(forward, deg, right, up, rng))
		}
	}
}

func TestApplySpreadStaysInsideCone(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	aim := NewAim(mgl64.Vec3{}, mgl64.Vec3{1, 0.2, -1})

	for _, deg := range []float64{0.4, 2, 10, 30} {
		maxAngle := 0.0
		for i := 0; i < 2000; i++ {
			dir := ApplySpread(aim.Forward, deg, aim.Right, aim.Up, rng)
			require.InDelta(t, 1, dir.Len(), 1e-9)
			angle := math.Acos(math.Min(1, dir.Dot(aim.Forward)))
			maxAngle = math.Max(maxAngle, angle)
		}
		limit := mgl64.DegToRad(deg)
		assert.LessOrEqual(t, maxAngle, limit+1e-9, "deg=%g", deg)
		assert.Greater(t, maxAngle, limit*0.8, "samples should reach near the cone edge, deg=%g", deg)
	}
}

func TestApplySpreadIsUniformOverDisk(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inner := 0
	const n = 20000
	for i := 0; i < n; i++ {
		x, y := sampleUnitDisk(rng)
		if x*x+y*y <= 0.25 {
			inner++
		}
	}
	// a disk of radius 0.5 holds a quarter of the area
	assert.InDelta(t, 0.25, float64(inner)/n, 0.02)
}

func TestSpreadToPixels(t *testing.T) {
	cases := []struct {
		name   string
		deg    float64
		fov    float64
		height float64
		want   float64
	}{
		{"zero", 0, 60, 1080, 0},
		{"negative_clamped", -5, 60, 1080, 0},
		{"half_fov_reaches_edge", 30, 60, 1080, 540},
		{"small_angle", 1, 90, 1000, math.Tan(mgl64.DegToRad(1)) * 500},
		{"degenerate_fov", 1, 0, 1000, math.Tan(mgl64.DegToRad(1)) / 0.0001 * 500},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, SpreadToPixels(c.deg, c.fov, c.height), 1e-6)
		})
	}
}

func TestReticleEasesTowardTarget(t *testing.T) {
	r := NewReticle()
	target := r.BaseGap + SpreadToPixels(2, 60, 1080)
	for i := 0; i < 600; i++ {
		r.Update(1.0/60, 2, 60, 1080, false)
	}
	assert.InDelta(t, target, r.Gap(), 1e-3)

	for i := 0; i < 600; i++ {
		r.Update(1.0/60, 2, 60, 1080, true)
	}
	assert.InDelta(t, target+r.FiringBloom, r.Gap(), 1e-3)
}
