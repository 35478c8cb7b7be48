package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/prefabs"
)

// Prefab specs are decoded once and reused for every spawn. Hot reload calls
// ResetPrefabCache.
var prefabCache = map[string]entityPrefabSpec{}

func loadPrefab(path string) (entityPrefabSpec, error) {
	if spec, ok := prefabCache[path]; ok {
		return spec, nil
	}
	spec, err := prefabs.LoadEntityBuildSpec(path)
	if err != nil {
		return entityPrefabSpec{}, fmt.Errorf("load prefab %q: %w", path, err)
	}
	prefabCache[path] = spec
	return spec, nil
}

// ResetPrefabCache drops every cached prefab so the next spawn re-reads it.
func ResetPrefabCache() {
	clear(prefabCache)
}

// spawnPrefab builds path from the cache and places it at (x, y).
func spawnPrefab(w *ecs.World, path string, x, y float64) (ecs.Entity, error) {
	spec, err := loadPrefab(path)
	if err != nil {
		return 0, err
	}
	e, err := BuildEntityFromSpec(w, path, spec)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("override transform: %w", err)
	}
	return e, nil
}
