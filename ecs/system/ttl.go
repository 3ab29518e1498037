package system

import (
	"github.com/milk9111/firefight/common"
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// TTLSystem destroys entities whose TTL deadline has passed.
type TTLSystem struct {
	clock *common.Clock
}

func NewTTLSystem(clock *common.Clock) *TTLSystem {
	return &TTLSystem{clock: clock}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	now := s.clock.Now()
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if now >= ttl.ExpiresAt {
			ecs.DestroyEntity(w, e)
		}
	})
}
