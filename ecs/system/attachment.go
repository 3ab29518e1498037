package system

import (
	"github.com/milk9111/firefight/ecs"
	"github.com/milk9111/firefight/ecs/component"
)

// AttachmentSystem keeps child colliders on their parent and marks orphans
// for despawn.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem {
	return &AttachmentSystem{}
}

func (s *AttachmentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ParentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Parent, t *component.Transform) {
		parent, ok := ecs.Get(w, ecs.Entity(p.Entity), component.TransformComponent.Kind())
		if !ok {
			_ = ecs.Add(w, e, component.DespawnComponent.Kind(), &component.Despawn{Reason: "orphaned"})
			return
		}
		t.Position = parent.Position.Add(p.Offset)
		t.Yaw = parent.Yaw
	})
}
