package system

import (
	"math"
	"strconv"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	animIdle = "idle"
	animWalk = "walk"

	// below this speed an entity counts as standing still
	idleSpeed = 0.1
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			if math.Hypot(vel.X, vel.Y) < idleSpeed {
				anim.Play(animIdle)
			} else {
				anim.Play(animWalk)
			}
			// steered entities face their target instead
			if !ecs.Has(w, e, component.MovementComponent.Kind()) {
				if vel.X > 0 {
					sprite.FlipX = sprite.BaseFlipX
				} else if vel.X < 0 {
					sprite.FlipX = !sprite.BaseFlipX
				}
			}
		}

		if !anim.Playing {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and 60 TPS
		ticksPerFrame := 1
		if def.FPS > 0 {
			ticksPerFrame = int(common.TPS / def.FPS)
		}
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}
	})
}

// FrameKey names the image the renderer draws for sprite this tick.
func FrameKey(sprite *component.Sprite, anim *component.Animation) string {
	if sprite == nil {
		return ""
	}
	if anim == nil || anim.Current == "" {
		return sprite.Key
	}
	return sprite.Key + "/" + anim.Current + "/" + strconv.Itoa(anim.Frame)
}
