package system

import (
	"testing"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func TestTTL(t *testing.T) {
	cases := []struct {
		name     string
		frames   int
		ticks    int
		wantDead bool
	}{
		{"alive", 3, 2, false},
		{"expires", 3, 3, true},
		{"zero_expires_now", 0, 1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			mustAdd(t, w, e, component.TTLComponent.Kind(), &component.TTL{Frames: c.frames})
			w.Scheduler().Add(NewTTLSystem())
			for i := 0; i < c.ticks; i++ {
				w.Update()
			}
			if got := !w.IsAlive(e); got != c.wantDead {
				t.Fatalf("expected dead=%v, got %v", c.wantDead, got)
			}
		})
	}
}

func TestWhiteFlash(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Frames: 6, Interval: 3, On: true})
	sys := NewWhiteFlashSystem()

	want := []bool{true, true, false, false, false}
	for i, on := range want {
		sys.Update(w)
		wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind())
		if !ok {
			t.Fatalf("tick %d: flash removed early", i)
		}
		if wf.On != on {
			t.Fatalf("tick %d: expected on=%v, got %v", i, on, wf.On)
		}
	}
	sys.Update(w)
	if ecs.Has(w, e, component.WhiteFlashComponent.Kind()) {
		t.Fatalf("flash should end after its frames")
	}
}
