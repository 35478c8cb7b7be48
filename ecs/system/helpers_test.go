package system

import (
	"math"
	"testing"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func newEntity(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	return e
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func newPlayer(t *testing.T, w *ecs.World, health int) ecs.Entity {
	t.Helper()
	e := newEntity(t, w, 0, 0)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	h := component.NewHealth(health)
	mustAdd(t, w, e, component.HealthComponent.Kind(), &h)
	return e
}

func newEnemy(t *testing.T, w *ecs.World, x, y float64, health int) ecs.Entity {
	t.Helper()
	e := newEntity(t, w, x, y)
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	layers := component.EnemyLayers
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &layers)
	mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	if health > 0 {
		h := component.NewHealth(health)
		mustAdd(t, w, e, component.HealthComponent.Kind(), &h)
	}
	return e
}

func hit(w *ecs.World, kind ecs.GameCollisionKind, status ecs.CollisionStatus, first, second ecs.Entity) {
	ecs.Publish(w, ecs.EventGameCollision, ecs.GameCollisionEvent{Kind: kind, Status: status, First: first, Second: second})
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
