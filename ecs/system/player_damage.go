package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// PlayerDamageSystem hurts the player when an enemy starts touching them and
// opens an invulnerability window.
type PlayerDamageSystem struct {
	InvulnerableFrames int
}

func NewPlayerDamageSystem(invulnerableFrames int) *PlayerDamageSystem {
	return &PlayerDamageSystem{InvulnerableFrames: invulnerableFrames}
}

func (s *PlayerDamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range gameCollisions(w, ecs.PlayerAndEnemy, ecs.CollisionStarted) {
		player, enemy := evt.First, evt.Second
		if !w.IsAlive(player) {
			continue
		}
		// the first hit of a tick opens the window, later ones bounce off it
		if ecs.Has(w, player, component.InvulnerableComponent.Kind()) {
			continue
		}
		health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
		if !ok || health.Dead() {
			continue
		}

		damage := 1
		if cd, ok := ecs.Get(w, enemy, component.ContactDamageComponent.Kind()); ok {
			damage = cd.Value()
		}
		died := health.Damage(damage)

		frames := s.InvulnerableFrames
		if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok && p.InvulnerableFrames > 0 {
			frames = p.InvulnerableFrames
		}
		if frames > 0 {
			_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: frames})
		}

		ecs.Publish(w, ecs.EventPlayerHit, ecs.PlayerHitEvent{Player: player, Enemy: enemy, Damage: damage, Health: health.Current})
		if died {
			logf("player", "died after hit from %v", enemy)
			ecs.Publish(w, ecs.EventPlayerDied, ecs.PlayerDiedEvent{Player: player})
		}
	}
}
