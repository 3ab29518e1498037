package ecs

import "github.com/milk9111/firefight/ecs/component"

// Add attaches or replaces a component.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.set(kind.ID(), true).Set(e, value)
	return nil
}

// Get returns the component of kind on e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	set := w.set(kind.ID(), false)
	if set == nil {
		return nil, false
	}
	v, ok := set.Get(e).(*T)
	return v, ok && v != nil
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches a component, reporting whether it was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	set := w.set(kind.ID(), false)
	return set != nil && set.Remove(e)
}

// ForEach visits every live entity holding kind. Entities destroyed or
// stripped of the component during iteration are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.set(kind.ID(), false)
	for _, e := range set.Entities() {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range Query(w, ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits entities holding all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range Query(w, ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// Query returns the entities that hold every listed kind, iterating the
// smallest set.
func Query(w *World, kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		set := w.set(k.ID(), false)
		if set == nil || set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		ok := true
		for _, s := range sets {
			if !s.Has(e) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity holding kind.
func First(w *World, kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	set := w.set(kind.ID(), false)
	for _, e := range set.Entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}
