package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

type collisionRule struct {
	kind   ecs.GameCollisionKind
	first  component.GameLayer
	second component.GameLayer
}

// Checked in order; the first rule matching in either orientation wins.
var collisionRules = []collisionRule{
	{ecs.PlayerAndEnemy, component.LayerPlayer, component.LayerEnemy},
	{ecs.AllyAndEnemy, component.LayerAlly, component.LayerEnemy},
	{ecs.EnemyAndEnemy, component.LayerEnemy, component.LayerEnemy},
	{ecs.ConvertingWeaponAndEnemy, component.LayerConvertingWeapon, component.LayerEnemy},
	{ecs.ConvertingWeaponAndAlly, component.LayerConvertingWeapon, component.LayerAlly},
	{ecs.WeaponAndEnemy, component.LayerWeapon, component.LayerEnemy},
	{ecs.PlayerAndGem, component.LayerPlayer, component.LayerGem},
}

// ClassifyCollision turns a raw overlap into a game collision with its roles
// in order. ok is false when no rule matches the pair.
func ClassifyCollision(evt ecs.CollisionEvent) (ecs.GameCollisionEvent, bool) {
	for _, rule := range collisionRules {
		if evt.LayersA.ContainsGroup(rule.first) && evt.LayersB.ContainsGroup(rule.second) {
			return ecs.GameCollisionEvent{Kind: rule.kind, Status: evt.Status, First: evt.A, Second: evt.B}, true
		}
		if evt.LayersB.ContainsGroup(rule.first) && evt.LayersA.ContainsGroup(rule.second) {
			return ecs.GameCollisionEvent{Kind: rule.kind, Status: evt.Status, First: evt.B, Second: evt.A}, true
		}
	}
	return ecs.GameCollisionEvent{}, false
}

// GameCollisionSystem classifies this tick's raw collisions and republishes
// them as game collisions.
type GameCollisionSystem struct {
	Debug bool
}

func NewGameCollisionSystem() *GameCollisionSystem {
	return &GameCollisionSystem{}
}

func (s *GameCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, raw := range ecs.Events[ecs.CollisionEvent](w, ecs.EventCollision) {
		evt, ok := ClassifyCollision(raw)
		if !ok {
			continue
		}
		if s != nil && s.Debug {
			logf("collision", "%s %s %v %v", evt.Kind, evt.Status, evt.First, evt.Second)
		}
		ecs.Publish(w, ecs.EventGameCollision, evt)
	}
}

// gameCollisions returns this tick's game collisions of kind and status.
func gameCollisions(w *ecs.World, kind ecs.GameCollisionKind, status ecs.CollisionStatus) []ecs.GameCollisionEvent {
	var out []ecs.GameCollisionEvent
	for _, evt := range ecs.Events[ecs.GameCollisionEvent](w, ecs.EventGameCollision) {
		if evt.Kind == kind && evt.Status == status {
			out = append(out, evt)
		}
	}
	return out
}
