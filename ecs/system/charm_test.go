package system

import (
	"testing"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func TestCharmConvertsEnemy(t *testing.T) {
	w := ecs.NewWorld()
	weapon := newEntity(t, w, 0, 0)
	enemy := newEnemy(t, w, 1, 1, 1)
	mustAdd(t, w, enemy, component.MovementComponent.Kind(), &component.Movement{Kind: component.MovementRunningGroup, DirX: 1})
	mustAdd(t, w, enemy, component.TweenComponent.Kind(), &component.Tween{Steps: InvaderSteps(1, 4, 1)})
	hit(w, ecs.ConvertingWeaponAndEnemy, ecs.CollisionStarted, weapon, enemy)

	NewCharmSystem(300).Update(w)

	if ecs.Has(w, enemy, component.EnemyTagComponent.Kind()) {
		t.Fatalf("charmed entity should lose its enemy tag")
	}
	if !ecs.Has(w, enemy, component.AllyTagComponent.Kind()) {
		t.Fatalf("charmed entity should be an ally")
	}
	if ecs.Has(w, enemy, component.TweenComponent.Kind()) {
		t.Fatalf("charmed entity should leave its formation")
	}
	layers, _ := ecs.Get(w, enemy, component.CollisionLayerComponent.Kind())
	if *layers != component.AllyLayers {
		t.Fatalf("expected ally layers, got %+v", *layers)
	}
	m, _ := ecs.Get(w, enemy, component.MovementComponent.Kind())
	if m.Kind != component.MovementSeekNearestEnemy {
		t.Fatalf("expected seek movement, got %s", m.Kind)
	}
	charmed, ok := ecs.Get(w, enemy, component.CharmedComponent.Kind())
	if !ok || charmed.Frames != 300 {
		t.Fatalf("expected a 300 frame charm, got %+v", charmed)
	}
	if charmed.Layers != component.EnemyLayers || charmed.Movement.Kind != component.MovementRunningGroup {
		t.Fatalf("charm should remember the enemy setup, got %+v", charmed)
	}
	if got := len(ecs.Events[ecs.CharmEvent](w, ecs.EventCharmed)); got != 1 {
		t.Fatalf("expected 1 charm event, got %d", got)
	}
}

func TestCharmNoop(t *testing.T) {
	cases := []struct {
		name   string
		frames int
		setup  func(t *testing.T, w *ecs.World) ecs.Entity
	}{
		{"zero_frames", 0, func(t *testing.T, w *ecs.World) ecs.Entity {
			return newEnemy(t, w, 0, 0, 1)
		}},
		{"not_an_enemy", 60, func(t *testing.T, w *ecs.World) ecs.Entity {
			return newEntity(t, w, 0, 0)
		}},
		{"despawning", 60, func(t *testing.T, w *ecs.World) ecs.Entity {
			e := newEnemy(t, w, 0, 0, 1)
			w.QueueDestroy(e)
			return e
		}},
		{"dead_handle", 60, func(t *testing.T, w *ecs.World) ecs.Entity {
			e := newEnemy(t, w, 0, 0, 1)
			ecs.DestroyEntity(w, e)
			return e
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := c.setup(t, w)
			if Charm(w, e, c.frames) {
				t.Fatalf("expected charm to be refused")
			}
			if ecs.Has(w, e, component.AllyTagComponent.Kind()) {
				t.Fatalf("refused charm should not tag an ally")
			}
		})
	}
}

func TestCharmExpiryRestoresEnemy(t *testing.T) {
	cases := []struct {
		name     string
		movement *component.Movement
	}{
		{"tracking", &component.Movement{Kind: component.MovementTracking}},
		{"no_steering", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			enemy := newEnemy(t, w, 0, 0, 1)
			if c.movement != nil {
				mustAdd(t, w, enemy, component.MovementComponent.Kind(), c.movement)
			}
			if !Charm(w, enemy, 3) {
				t.Fatalf("charm refused")
			}

			sys := NewCharmTimerSystem()
			sys.Update(w)
			sys.Update(w)
			if !ecs.Has(w, enemy, component.AllyTagComponent.Kind()) {
				t.Fatalf("charm should still hold after 2 of 3 ticks")
			}
			sys.Update(w)

			if ecs.Has(w, enemy, component.AllyTagComponent.Kind()) || ecs.Has(w, enemy, component.CharmedComponent.Kind()) {
				t.Fatalf("expired charm should be removed")
			}
			if !ecs.Has(w, enemy, component.EnemyTagComponent.Kind()) {
				t.Fatalf("expired ally should be an enemy again")
			}
			layers, _ := ecs.Get(w, enemy, component.CollisionLayerComponent.Kind())
			if *layers != component.EnemyLayers {
				t.Fatalf("expected enemy layers back, got %+v", *layers)
			}
			m, ok := ecs.Get(w, enemy, component.MovementComponent.Kind())
			if c.movement == nil {
				if ok {
					t.Fatalf("entity had no steering before the charm, got %+v", m)
				}
			} else if !ok || m.Kind != c.movement.Kind {
				t.Fatalf("expected movement %s back, got %+v", c.movement.Kind, m)
			}
			if got := len(ecs.Events[ecs.CharmEvent](w, ecs.EventCharmExpired)); got != 1 {
				t.Fatalf("expected 1 expiry event, got %d", got)
			}
		})
	}
}

func TestCharmRefresh(t *testing.T) {
	w := ecs.NewWorld()
	weapon := newEntity(t, w, 0, 0)
	ally := newEnemy(t, w, 0, 0, 1)
	Charm(w, ally, 100)
	charmed, _ := ecs.Get(w, ally, component.CharmedComponent.Kind())
	charmed.Frames = 10

	w.Events().Drain()
	hit(w, ecs.ConvertingWeaponAndAlly, ecs.CollisionStarted, weapon, ally)
	NewCharmSystem(100).Update(w)

	if charmed.Frames != 100 {
		t.Fatalf("expected timer refreshed to 100, got %d", charmed.Frames)
	}
	if got := len(ecs.Events[ecs.CharmEvent](w, ecs.EventCharmed)); got != 0 {
		t.Fatalf("refresh should not announce a new charm, got %d", got)
	}
}

func TestCharmSuspendsRepulsion(t *testing.T) {
	cases := []struct {
		name      string
		repulsion *component.RepulsionLayer
	}{
		{"crowding_enemy", &component.RepulsionLayer{Radius: 3}},
		{"never_repelled", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ally := newEnemy(t, w, 0, 0, 1)
			if c.repulsion != nil {
				mustAdd(t, w, ally, component.RepulsionLayerComponent.Kind(), c.repulsion)
			}
			neighbour := repelled(t, w, 1, 0, component.RepulsionLayer{})
			if !Charm(w, ally, 1) {
				t.Fatalf("charm refused")
			}
			if ecs.Has(w, ally, component.RepulsionLayerComponent.Kind()) {
				t.Fatalf("allies should not repel")
			}

			NewClusterRepulsionSystem(2, 50, 1).Update(w)
			va, _ := ecs.Get(w, ally, component.VelocityComponent.Kind())
			vn, _ := ecs.Get(w, neighbour, component.VelocityComponent.Kind())
			if va.X != 0 || vn.X != 0 {
				t.Fatalf("ally and enemy should not push each other, got %v and %v", va.X, vn.X)
			}

			NewCharmTimerSystem().Update(w)
			r, ok := ecs.Get(w, ally, component.RepulsionLayerComponent.Kind())
			if c.repulsion == nil {
				if ok {
					t.Fatalf("expired charm should not invent a repulsion layer, got %+v", r)
				}
				return
			}
			if !ok || *r != *c.repulsion {
				t.Fatalf("expected repulsion %+v back, got %+v", *c.repulsion, r)
			}
		})
	}
}
