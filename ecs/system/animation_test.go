package system

import (
	"testing"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func testAnimation() *component.Animation {
	return &component.Animation{
		Defs: map[string]component.AnimationDef{
			animIdle: {Name: animIdle, FrameCount: 2, FPS: 3, Loop: true},
			animWalk: {Name: animWalk, FrameCount: 4, FPS: 30, Loop: true},
			"once":   {Name: "once", FrameCount: 2, FPS: 60, Loop: false},
		},
		Current: animIdle,
		Playing: true,
	}
}

func TestAnimationPicksClipFromSpeed(t *testing.T) {
	cases := []struct {
		name     string
		vx, vy   float64
		steered  bool
		baseFlip bool
		wantClip string
		wantFlip bool
	}{
		{"still", 0, 0.05, false, false, animIdle, false},
		{"walking_right", 1, 0, false, false, animWalk, false},
		{"walking_left", -1, 0, false, false, animWalk, true},
		{"walking_left_base_flip", -1, 0, false, true, animWalk, false},
		{"steered_keeps_facing", -1, 0, true, false, animWalk, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newEntity(t, w, 0, 0)
			mustAdd(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{X: c.vx, Y: c.vy})
			mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "player", BaseFlipX: c.baseFlip, FlipX: c.baseFlip})
			mustAdd(t, w, e, component.AnimationComponent.Kind(), testAnimation())
			if c.steered {
				mustAdd(t, w, e, component.MovementComponent.Kind(), &component.Movement{Kind: component.MovementTracking})
			}

			NewAnimationSystem().Update(w)

			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			if anim.Current != c.wantClip {
				t.Fatalf("expected clip %q, got %q", c.wantClip, anim.Current)
			}
			s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			if s.FlipX != c.wantFlip {
				t.Fatalf("expected flip=%v, got %v", c.wantFlip, s.FlipX)
			}
		})
	}
}

func TestAnimationAdvancesFrames(t *testing.T) {
	cases := []struct {
		name        string
		clip        string
		ticks       int
		wantFrame   int
		wantPlaying bool
	}{
		// walk: 60 TPS / 30 FPS = a frame every 2 ticks
		{"walk_two_frames", animWalk, 4, 2, true},
		{"walk_wraps", animWalk, 8, 0, true},
		{"once_holds_last_frame", "once", 5, 1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			anim := testAnimation()
			anim.Play(c.clip)
			mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: "knife"})
			mustAdd(t, w, e, component.AnimationComponent.Kind(), anim)
			sys := NewAnimationSystem()
			for i := 0; i < c.ticks; i++ {
				sys.Update(w)
			}

			got, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			if got.Frame != c.wantFrame || got.Playing != c.wantPlaying {
				t.Fatalf("expected frame %d playing=%v, got frame %d playing=%v", c.wantFrame, c.wantPlaying, got.Frame, got.Playing)
			}
		})
	}
}

func TestFrameKey(t *testing.T) {
	sprite := &component.Sprite{Key: "pumpkin"}
	cases := []struct {
		name string
		anim *component.Animation
		want string
	}{
		{"no_animation", nil, "pumpkin"},
		{"no_clip", &component.Animation{}, "pumpkin"},
		{"clip_frame", &component.Animation{Current: animWalk, Frame: 3}, "pumpkin/walk/3"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FrameKey(sprite, c.anim); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
	if FrameKey(nil, nil) != "" {
		t.Fatalf("nil sprite should have no key")
	}
}

func TestSplitFrameKey(t *testing.T) {
	cases := []struct {
		key       string
		wantBase  string
		wantAnim  string
		wantFrame int
	}{
		{"gem", "gem", "", 0},
		{"player/walk/2", "player", "walk", 2},
		{"player/idle", "player", "idle", 0},
	}

	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			base, anim, frame := splitFrameKey(c.key)
			if base != c.wantBase || anim != c.wantAnim || frame != c.wantFrame {
				t.Fatalf("expected (%q, %q, %d), got (%q, %q, %d)", c.wantBase, c.wantAnim, c.wantFrame, base, anim, frame)
			}
		})
	}
}
