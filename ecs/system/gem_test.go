package system

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

func TestGemCollect(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(t, w, 5)
	gem := newEntity(t, w, 0, 0)
	mustAdd(t, w, gem, component.GemComponent.Kind(), &component.Gem{Value: 3})
	hit(w, ecs.PlayerAndGem, ecs.CollisionStarted, player, gem)
	// the same gem touched twice in one tick only pays once
	hit(w, ecs.PlayerAndGem, ecs.CollisionStarted, player, gem)

	NewGemCollectSystem().Update(w)

	if !w.PendingDestroy(gem) {
		t.Fatalf("collected gem should despawn")
	}
	got := ecs.Events[ecs.GemCollectedEvent](w, ecs.EventGemCollected)
	if len(got) != 1 || got[0].Value != 3 || got[0].Player != player {
		t.Fatalf("expected one pickup worth 3, got %+v", got)
	}
}

func TestGemDrop(t *testing.T) {
	cases := []struct {
		name      string
		drop      *component.GemDrop
		lifetime  int
		wantGems  int
		wantValue int
	}{
		{"single", &component.GemDrop{Count: 1, Value: 2}, 0, 1, 2},
		{"scatter", &component.GemDrop{Count: 3, Value: 1}, 120, 3, 1},
		{"no_drop", nil, 0, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			enemy := newEnemy(t, w, 4, -2, 1)
			if c.drop != nil {
				mustAdd(t, w, enemy, component.GemDropComponent.Kind(), c.drop)
			}
			killEnemy(w, enemy, 0)

			cfg := prefabs.GemTuning{Prefab: "gem.yaml", Value: 1, LifetimeFrames: c.lifetime}
			NewGemDropSystem(cfg, rand.New(rand.NewPCG(1, 2))).Update(w)

			gems := w.Query(component.GemComponent.Kind())
			if len(gems) != c.wantGems {
				t.Fatalf("expected %d gems, got %d", c.wantGems, len(gems))
			}
			for _, g := range gems {
				gc, _ := ecs.Get(w, g, component.GemComponent.Kind())
				if gc.Value != c.wantValue {
					t.Fatalf("expected gem value %d, got %d", c.wantValue, gc.Value)
				}
				tr, _ := ecs.Get(w, g, component.TransformComponent.Kind())
				if d := (tr.X-4)*(tr.X-4) + (tr.Y+2)*(tr.Y+2); d > 0.41*0.41 {
					t.Fatalf("gem dropped too far from the kill: (%v, %v)", tr.X, tr.Y)
				}
				if got := ecs.Has(w, g, component.TTLComponent.Kind()); got != (c.lifetime > 0) {
					t.Fatalf("expected ttl=%v, got %v", c.lifetime > 0, got)
				}
			}
		})
	}
}

func TestGemBob(t *testing.T) {
	w := ecs.NewWorld()
	gem := newEntity(t, w, 0, 5)
	mustAdd(t, w, gem, component.GemComponent.Kind(), &component.Gem{BobAmplitude: 0.5})
	sys := NewGemBobSystem()

	for i := 0; i < 200; i++ {
		sys.Update(w)
		tr, _ := ecs.Get(w, gem, component.TransformComponent.Kind())
		if tr.Y < 4.5-1e-9 || tr.Y > 5.5+1e-9 {
			t.Fatalf("tick %d: gem left its bob range, y=%v", i, tr.Y)
		}
	}
}
