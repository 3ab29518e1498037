package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// effectSink turns impact and death requests into short-lived marker
// entities for the viewer.
type effectSink struct {
	world    *ecs.World
	clock    *common.Clock
	lifetime time.Duration
}

func (f *effectSink) SpawnImpact(point, normal mgl64.Vec3, struck bool) {
	f.spawn(component.Impact{Point: point, Normal: normal, Struck: struck})
}

func (f *effectSink) SpawnDeath(point, normal mgl64.Vec3) {
	f.spawn(component.Impact{Point: point, Normal: normal, Death: true})
}

func (f *effectSink) spawn(impact component.Impact) {
	e := ecs.CreateEntity(f.world)
	_ = ecs.Add(f.world, e, component.ImpactComponent.Kind(), &impact)
	_ = ecs.Add(f.world, e, component.TTLComponent.Kind(), &component.TTL{ExpiresAt: f.clock.Now() + f.lifetime})
}
