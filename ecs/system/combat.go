package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// dealDamage hurts e and reports whether it died. Entities without Health
// die to any hit.
func dealDamage(w *ecs.World, e ecs.Entity, amount int) bool {
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return true
	}
	return h.Damage(amount)
}

// killEnemy queues e for despawn and announces it. It returns false when e
// is already dead or on its way out, so one enemy is never killed twice.
func killEnemy(w *ecs.World, e, killer ecs.Entity) bool {
	if !w.IsAlive(e) || w.PendingDestroy(e) {
		return false
	}
	evt := ecs.EnemyKilledEvent{Enemy: e, Killer: killer}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		evt.X, evt.Y = t.X, t.Y
	}
	w.QueueDestroy(e)
	ecs.Publish(w, ecs.EventEnemyKilled, evt)
	return true
}

func usable(w *ecs.World, e ecs.Entity) bool {
	return w.IsAlive(e) && !w.PendingDestroy(e)
}

// AllyCombatSystem trades one point of damage between an ally and the
// enemy it starts touching.
type AllyCombatSystem struct{}

func NewAllyCombatSystem() *AllyCombatSystem { return &AllyCombatSystem{} }

func (s *AllyCombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range gameCollisions(w, ecs.AllyAndEnemy, ecs.CollisionStarted) {
		ally, enemy := evt.First, evt.Second
		if !usable(w, ally) || !usable(w, enemy) {
			continue
		}
		if dealDamage(w, enemy, 1) {
			killEnemy(w, enemy, ally)
		}
		if dealDamage(w, ally, 1) {
			w.QueueDestroy(ally)
		}
	}
}

const weaponHitFlashFrames = 12

// WeaponDamageSystem applies orbiting weapon hits to enemies.
type WeaponDamageSystem struct{}

func NewWeaponDamageSystem() *WeaponDamageSystem { return &WeaponDamageSystem{} }

func (s *WeaponDamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range gameCollisions(w, ecs.WeaponAndEnemy, ecs.CollisionStarted) {
		weapon, enemy := evt.First, evt.Second
		if !usable(w, enemy) {
			continue
		}
		amount := 1
		if cd, ok := ecs.Get(w, weapon, component.ContactDamageComponent.Kind()); ok {
			amount = cd.Value()
		}
		if dealDamage(w, enemy, amount) {
			killEnemy(w, enemy, weapon)
			continue
		}
		_ = ecs.Add(w, enemy, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Frames: weaponHitFlashFrames, Interval: 3, On: true})
	}
}
