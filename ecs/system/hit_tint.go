package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// HitTintSystem tracks how many enemies touch each tinted entity and paints
// its sprite with the hit color while touched or invulnerable.
type HitTintSystem struct{}

func NewHitTintSystem() *HitTintSystem { return &HitTintSystem{} }

func (s *HitTintSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range ecs.Events[ecs.GameCollisionEvent](w, ecs.EventGameCollision) {
		if evt.Kind != ecs.PlayerAndEnemy {
			continue
		}
		tint, ok := ecs.Get(w, evt.First, component.HitTintComponent.Kind())
		if !ok {
			continue
		}
		switch evt.Status {
		case ecs.CollisionStarted:
			tint.Contacts++
		case ecs.CollisionStopped:
			if tint.Contacts > 0 {
				tint.Contacts--
			}
		}
	}

	ecs.ForEach(w, component.HitTintComponent.Kind(), func(e ecs.Entity, tint *component.HitTint) {
		tint.Active = tint.Contacts > 0 || ecs.Has(w, e, component.InvulnerableComponent.Kind())
		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			return
		}
		if tint.Active {
			sprite.Tint = tint.Hit
		} else {
			sprite.Tint = tint.Healthy
		}
	})
}
