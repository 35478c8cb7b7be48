package system

import (
	"math"
	"testing"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func repelled(t *testing.T, w *ecs.World, x, y float64, layer component.RepulsionLayer) ecs.Entity {
	t.Helper()
	e := newEntity(t, w, x, y)
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(t, w, e, component.RepulsionLayerComponent.Kind(), &layer)
	return e
}

func TestClusterRepulsion(t *testing.T) {
	cases := []struct {
		name     string
		bx       float64
		la, lb   component.RepulsionLayer
		wantPush float64
	}{
		// push = (radius - dist) / divisor, applied to both sides
		{"close", 1, component.RepulsionLayer{}, component.RepulsionLayer{}, (2 - 1) / 50.0},
		{"touching_edge", 2, component.RepulsionLayer{}, component.RepulsionLayer{}, 0},
		{"out_of_range", 3, component.RepulsionLayer{}, component.RepulsionLayer{}, 0},
		{"radius_override", 3, component.RepulsionLayer{Radius: 4}, component.RepulsionLayer{}, (4 - 3) / 50.0},
		{"masked_out", 1, component.RepulsionLayer{Category: 1, Mask: 1}, component.RepulsionLayer{Category: 2, Mask: 2}, 0},
		{"one_way_mask", 1, component.RepulsionLayer{Category: 1, Mask: 2}, component.RepulsionLayer{Category: 2, Mask: 2}, 0},
		{"matching_masks", 1, component.RepulsionLayer{Category: 1, Mask: 2}, component.RepulsionLayer{Category: 2, Mask: 1}, (2 - 1) / 50.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			a := repelled(t, w, 0, 0, c.la)
			b := repelled(t, w, c.bx, 0, c.lb)

			NewClusterRepulsionSystem(2, 50, 1).Update(w)

			va, _ := ecs.Get(w, a, component.VelocityComponent.Kind())
			vb, _ := ecs.Get(w, b, component.VelocityComponent.Kind())
			if !near(va.X, -c.wantPush) || !near(vb.X, c.wantPush) {
				t.Fatalf("expected pushes (%v, %v), got (%v, %v)", -c.wantPush, c.wantPush, va.X, vb.X)
			}
			if va.Y != 0 || vb.Y != 0 {
				t.Fatalf("push should stay on the x axis, got %v and %v", va.Y, vb.Y)
			}
		})
	}
}

func TestClusterRepulsionSeparatesStackedEntities(t *testing.T) {
	w := ecs.NewWorld()
	a := repelled(t, w, 1, 1, component.RepulsionLayer{})
	b := repelled(t, w, 1, 1, component.RepulsionLayer{})

	NewClusterRepulsionSystem(0, 0, 3).Update(w)

	va, _ := ecs.Get(w, a, component.VelocityComponent.Kind())
	vb, _ := ecs.Get(w, b, component.VelocityComponent.Kind())
	if va.X == 0 && va.Y == 0 {
		t.Fatalf("stacked entities should be nudged apart")
	}
	if !near(va.X, -vb.X) || !near(va.Y, -vb.Y) {
		t.Fatalf("push should be symmetric, got (%v, %v) and (%v, %v)", va.X, va.Y, vb.X, vb.Y)
	}
	if l := math.Hypot(va.X, va.Y); math.Abs(l-2.0/50) > 1e-4 {
		t.Fatalf("expected a full strength push, got %v", l)
	}
}

func TestClusterRepulsionSkipsDespawning(t *testing.T) {
	w := ecs.NewWorld()
	a := repelled(t, w, 0, 0, component.RepulsionLayer{})
	b := repelled(t, w, 1, 0, component.RepulsionLayer{})
	w.QueueDestroy(b)

	NewClusterRepulsionSystem(2, 50, 1).Update(w)

	va, _ := ecs.Get(w, a, component.VelocityComponent.Kind())
	if va.X != 0 {
		t.Fatalf("despawning entities should not push, got %v", va.X)
	}
}
