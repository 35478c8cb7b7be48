package ecs

import (
	"testing"

	"github.com/milk9111/horde/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
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
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

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
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get[int](w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get[float64](w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove[float64](w, e1, h3.Kind()) },
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
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)
				e4 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, intPtr(3)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kc, intPtr(5)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, intPtr(4)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e4, kc, intPtr(6)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kc, intPtr(3)); err != nil {
					t.Fatal(err)
				}

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "no_common",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected no common entities, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if res != nil && len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}


func TestEntityReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	first := CreateEntity(w)
	if err := Add(w, first, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !DestroyEntity(w, first) {
		t.Fatalf("destroy failed")
	}

	second := CreateEntity(w)
	if second.id() != first.id() {
		t.Fatalf("expected id reuse, got %v and %v", first, second)
	}
	if second.generation() == first.generation() {
		t.Fatalf("expected generation bump on reuse")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle must not be alive")
	}
	if Has(w, second, h.Kind()) {
		t.Fatalf("reused entity must not inherit components")
	}
	if err := Add(w, first, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[int](w, e, component.ComponentKind[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("x"))

	got := w.Query(ka, kb)
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected [e2], got %v", got)
	}
	if got := w.Query(ka, component.NewComponentKind[float64]()); got != nil {
		t.Fatalf("expected nil for missing store, got %v", got)
	}

	first, ok := First(w, kb)
	if !ok || first != e2 {
		t.Fatalf("expected e2 from First, got %v ok=%v", first, ok)
	}
	DestroyEntity(w, e2)
	if _, ok := First(w, kb); ok {
		t.Fatalf("expected no entity after destroy")
	}
}

func TestGetReturnsSharedPointer(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := CreateEntity(w)
	_ = Add(w, e, k, intPtr(1))

	v, _ := Get(w, e, k)
	*v = 5

	again, _ := Get(w, e, k)
	if *again != 5 {
		t.Fatalf("expected in-place mutation to stick, got %d", *again)
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerRunsStagesInOrder(t *testing.T) {
	w := NewWorld()
	var order []string

	w.Scheduler().AddToStage(StagePostUpdate, recordSystem{"post", &order})
	w.Scheduler().AddToStage(StagePhysics, recordSystem{"physics", &order})
	w.Scheduler().AddToStage(StagePreUpdate, recordSystem{"pre", &order})
	w.AddSystem(recordSystem{"update_a", &order})
	w.AddSystem(recordSystem{"update_b", &order})
	w.Scheduler().AddToStage(StagePostPhysics, recordSystem{"post_physics", &order})

	w.Update()

	want := []string{"pre", "update_a", "update_b", "physics", "post_physics", "post"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if w.Frame() != 1 {
		t.Fatalf("expected frame 1, got %d", w.Frame())
	}
}

type funcSystem func(*World)

func (f funcSystem) Update(w *World) { f(w) }

func TestQueueDestroyDefersUntilTickEnd(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()
	e := CreateEntity(w)
	_ = Add(w, e, k, intPtr(1))

	var seenLater bool
	w.AddSystem(funcSystem(func(w *World) {
		w.QueueDestroy(e)
		w.QueueDestroy(e)
	}))
	w.AddSystem(funcSystem(func(w *World) {
		seenLater = IsAlive(w, e) && w.PendingDestroy(e)
	}))

	w.Update()

	if !seenLater {
		t.Fatalf("queued entity should stay alive for the rest of the tick")
	}
	if IsAlive(w, e) {
		t.Fatalf("queued entity should be destroyed after the tick")
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected no entities, got %v", Entities(w))
	}
}

func TestEventsVisibleUntilFlush(t *testing.T) {
	w := NewWorld()
	var readA, readB []PlayerHitEvent

	w.AddSystem(funcSystem(func(w *World) {
		Publish(w, EventPlayerHit, PlayerHitEvent{Damage: 1})
		Publish(w, EventGemCollected, GemCollectedEvent{Value: 1})
		Publish(w, EventPlayerHit, PlayerHitEvent{Damage: 2})
	}))
	w.AddSystem(funcSystem(func(w *World) { readA = Events[PlayerHitEvent](w, EventPlayerHit) }))
	w.AddSystem(funcSystem(func(w *World) { readB = Events[PlayerHitEvent](w, EventPlayerHit) }))

	w.Update()

	if len(readA) != 2 || len(readB) != 2 {
		t.Fatalf("every reader should see both events, got %d and %d", len(readA), len(readB))
	}
	if readA[0].Damage != 1 || readA[1].Damage != 2 {
		t.Fatalf("events out of order: %+v", readA)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected queue flushed after tick, got %d", w.Events().Len())
	}
}
