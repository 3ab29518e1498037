package ecs

import "github.com/milk9111/firefight/ecs/component"

// World owns entities and their component sets.
type World struct {
	entities entityStore
	sets     map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{sets: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It reports
// false for handles that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, set := range w.sets {
		set.Remove(e)
	}
	return true
}

// IsAlive reports whether an entity handle still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) set(id component.ComponentID, create bool) *SparseSet {
	if w.sets == nil {
		w.sets = make(map[component.ComponentID]*SparseSet)
	}
	set, ok := w.sets[id]
	if !ok && create {
		set = newSparseSet()
		w.sets[id] = set
	}
	return set
}
