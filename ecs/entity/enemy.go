package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

// NewEnemy spawns kind at (x, y). A MovementNone movement keeps the prefab's
// default steering.
func NewEnemy(w *ecs.World, kind component.EnemyKind, x, y float64, movement component.Movement) (ecs.Entity, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("enemy: unknown kind %q", kind)
	}
	enemy, err := spawnPrefab(w, prefabs.EnemyPrefab(string(kind)), x, y)
	if err != nil {
		return 0, fmt.Errorf("enemy %s: %w", kind, err)
	}
	if movement.Kind != component.MovementNone {
		if err := ecs.Add(w, enemy, component.MovementComponent.Kind(), &movement); err != nil {
			return 0, fmt.Errorf("enemy %s: set movement: %w", kind, err)
		}
	}
	return enemy, nil
}
