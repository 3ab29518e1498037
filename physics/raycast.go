package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/firefight/combat"
	"github.com/milk9111/firefight/common"
)

type rayCandidate struct {
	alpha  float64
	normal mgl64.Vec3
	entity combat.EntityID
}

// Raycast returns the first surface along the ray within maxDistance.
// Sensors are never reported.
func (w *World) Raycast(origin, direction mgl64.Vec3, maxDistance float64, filter combat.CollisionFilter) (combat.RayHit, bool) {
	if w == nil || w.space == nil || maxDistance <= 0 {
		return combat.RayHit{}, false
	}
	dir := common.SafeNormalize(direction, mgl64.Vec3{})
	if dir.Len() == 0 {
		return combat.RayHit{}, false
	}
	span := dir.Mul(maxDistance)
	end := origin.Add(span)

	mask := filter.Mask
	if mask == 0 {
		mask = combat.LayerAll
	}

	var candidates []rayCandidate
	if mask&combat.LayerWorld != 0 && span.Y() < 0 && origin.Y() >= w.FloorY {
		alpha := (w.FloorY - origin.Y()) / span.Y()
		if alpha >= 0 && alpha <= 1 {
			candidates = append(candidates, rayCandidate{alpha: alpha, normal: common.WorldUp})
		}
	}

	a := cp.Vector{X: origin.X(), Y: origin.Z()}
	b := cp.Vector{X: end.X(), Y: end.Z()}
	if a.Distance(b) > 1e-9 {
		query := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(mask)}
		w.space.SegmentQuery(a, b, 0, query, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
			if shape.Sensor() {
				return
			}
			body := w.shapeToBody[shape]
			if body == nil {
				return
			}
			entity := w.shapeToEntity[shape]
			if entity != 0 && entity == filter.Ignore {
				return
			}
			if c, ok := w.verticalEntry(shape, body, a, b, alpha, origin.Y(), span.Y(), normal); ok {
				c.entity = entity
				candidates = append(candidates, c)
			}
		}, nil)
	}

	if len(candidates) == 0 {
		return combat.RayHit{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].alpha < candidates[j].alpha })
	first := candidates[0]
	return combat.RayHit{
		Point:    origin.Add(span.Mul(first.alpha)),
		Normal:   first.normal,
		Entity:   first.entity,
		Distance: maxDistance * first.alpha,
	}, true
}

// verticalEntry finds where the ray first lies inside the shape's footprint
// and its vertical span. entry is the alpha at which the ray enters the
// footprint in the ground plane.
func (w *World) verticalEntry(shape *cp.Shape, body *Body, a, b cp.Vector, entry, oy, dy float64, normal cp.Vector) (rayCandidate, bool) {
	exit := 1.0
	var info cp.SegmentQueryInfo
	if shape.SegmentQuery(b, a, 0, &info) {
		exit = 1 - info.Alpha
	}
	if exit < entry {
		exit = entry
	}

	yIn := oy + dy*entry
	if yIn >= body.minY && yIn <= body.maxY {
		return rayCandidate{alpha: entry, normal: mgl64.Vec3{normal.X, 0, normal.Y}}, true
	}
	if math.Abs(dy) < 1e-12 {
		return rayCandidate{}, false
	}

	// Enter through the top or bottom cap.
	capY, capNormal := body.maxY, common.WorldUp
	if yIn < body.minY {
		capY, capNormal = body.minY, common.WorldUp.Mul(-1)
	}
	alpha := (capY - oy) / dy
	if alpha < entry || alpha > exit {
		return rayCandidate{}, false
	}
	return rayCandidate{alpha: alpha, normal: capNormal}, true
}
