package ecs

import (
	"testing"

	"github.com/milk9111/firefight/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestStaleHandleStaysDead(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, reused)
	}
	if reused == old {
		t.Fatalf("reused handle must differ by generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if _, ok := Get(w, reused, h.Kind()); ok {
		t.Fatalf("component leaked into reused slot")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hi.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hi.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, hi.Kind()) {
					t.Fatalf("e2 should not have int")
				}
			},
			teardown: func() bool { return Remove(w, e1, hi.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, hs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, hs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hs.Kind()) || !Has(w, e2, hs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hs.Kind()) },
		},
		{
			name:  "nil_value_rejected",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if err := Add[int](w, e1, hi.Kind(), nil); err != component.ErrNilComponent {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
			teardown: func() bool { return !Remove(w, e1, hi.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEachSkipsEntitiesDestroyedMidIteration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		for _, other := range ents {
			if other != e {
				DestroyEntity(w, other)
			}
		}
	})
	if visited != 1 {
		t.Fatalf("expected 1 visit, got %d", visited)
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	for _, add := range []struct {
		e    Entity
		kind component.ComponentKind[int]
	}{
		{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}, {e3, kc},
	} {
		if err := Add(w, add.e, add.kind, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}

	got := Query(w, ka, kb, kc)
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected [e2], got %v", got)
	}

	var res []Entity
	ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("ForEach3 expected [e2], got %v", res)
	}

	if first, ok := First(w, kb); !ok || (first != e2 && first != e3) {
		t.Fatalf("First returned %v ok=%v", first, ok)
	}
}

func TestSchedulerOrder(t *testing.T) {
	var order []string
	s := NewScheduler(
		SystemFunc(func(*World) { order = append(order, "a") }),
		nil,
		SystemFunc(func(*World) { order = append(order, "b") }),
	)
	s.Update(NewWorld())
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	q.Push(Event{Type: "shot_fired"})
	q.Push(Event{Type: "death", Data: 7})
	if q.Len() != 2 {
		t.Fatalf("Len = %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Type != "shot_fired" || got[1].Data != 7 {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatal("queue not cleared")
	}

	var nilWorld *World
	nilWorld.Events().Push(Event{Type: "x"})
}
