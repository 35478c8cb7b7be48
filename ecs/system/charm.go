package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// CharmSystem converts enemies touched by a converting weapon into allies and
// refreshes the timer of allies it touches again.
type CharmSystem struct {
	Frames int
}

func NewCharmSystem(frames int) *CharmSystem {
	return &CharmSystem{Frames: frames}
}

func (s *CharmSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range gameCollisions(w, ecs.ConvertingWeaponAndEnemy, ecs.CollisionStarted) {
		Charm(w, evt.Second, s.Frames)
	}
	for _, evt := range gameCollisions(w, ecs.ConvertingWeaponAndAlly, ecs.CollisionStarted) {
		charmed, ok := ecs.Get(w, evt.Second, component.CharmedComponent.Kind())
		if !ok || !usable(w, evt.Second) {
			continue
		}
		if charmed.Frames < s.Frames {
			charmed.Frames = s.Frames
		}
	}
}

// Charm turns enemy into an ally for frames ticks. It is a no-op for dead,
// despawning or already charmed entities.
func Charm(w *ecs.World, enemy ecs.Entity, frames int) bool {
	if frames <= 0 || !usable(w, enemy) || !ecs.Has(w, enemy, component.EnemyTagComponent.Kind()) {
		return false
	}
	if ecs.Has(w, enemy, component.CharmedComponent.Kind()) {
		return false
	}

	charmed := &component.Charmed{Frames: frames, Layers: component.EnemyLayers}
	if l, ok := ecs.Get(w, enemy, component.CollisionLayerComponent.Kind()); ok {
		charmed.Layers = *l
	}
	if m, ok := ecs.Get(w, enemy, component.MovementComponent.Kind()); ok {
		charmed.Movement = *m
	}
	if r, ok := ecs.Get(w, enemy, component.RepulsionLayerComponent.Kind()); ok {
		repulsion := *r
		charmed.Repulsion = &repulsion
	}

	ecs.Remove(w, enemy, component.EnemyTagComponent.Kind())
	_ = ecs.Add(w, enemy, component.AllyTagComponent.Kind(), &component.AllyTag{})
	allyLayers := component.AllyLayers
	_ = ecs.Add(w, enemy, component.CollisionLayerComponent.Kind(), &allyLayers)
	_ = ecs.Add(w, enemy, component.MovementComponent.Kind(), &component.Movement{Kind: component.MovementSeekNearestEnemy})
	_ = ecs.Add(w, enemy, component.CharmedComponent.Kind(), charmed)
	// only enemies crowd each other
	ecs.Remove(w, enemy, component.RepulsionLayerComponent.Kind())
	// charmed invaders break formation
	ecs.Remove(w, enemy, component.TweenComponent.Kind())

	ecs.Publish(w, ecs.EventCharmed, ecs.CharmEvent{Entity: enemy, Frames: frames})
	return true
}

// CharmTimerSystem counts charms down and turns expired allies back into
// enemies with their original layers and steering.
type CharmTimerSystem struct{}

func NewCharmTimerSystem() *CharmTimerSystem { return &CharmTimerSystem{} }

func (s *CharmTimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.CharmedComponent.Kind(), func(e ecs.Entity, charmed *component.Charmed) {
		if charmed.Frames > 0 {
			charmed.Frames--
		}
		if charmed.Frames > 0 || w.PendingDestroy(e) {
			return
		}
		revert(w, e, charmed)
	})
}

func revert(w *ecs.World, e ecs.Entity, charmed *component.Charmed) {
	layers := charmed.Layers
	movement := charmed.Movement
	repulsion := charmed.Repulsion

	ecs.Remove(w, e, component.CharmedComponent.Kind())
	ecs.Remove(w, e, component.AllyTagComponent.Kind())
	_ = ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	_ = ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &layers)
	if movement.Kind == component.MovementNone {
		ecs.Remove(w, e, component.MovementComponent.Kind())
	} else {
		_ = ecs.Add(w, e, component.MovementComponent.Kind(), &movement)
	}
	if repulsion != nil {
		_ = ecs.Add(w, e, component.RepulsionLayerComponent.Kind(), repulsion)
	}

	ecs.Publish(w, ecs.EventCharmExpired, ecs.CharmEvent{Entity: e})
}
