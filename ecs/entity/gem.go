package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

// NewGem drops a gem worth value at (x, y). lifetime > 0 despawns it after
// that many ticks.
func NewGem(w *ecs.World, cfg prefabs.GemTuning, x, y float64, value int) (ecs.Entity, error) {
	gem, err := spawnPrefab(w, cfg.Prefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("gem: %w", err)
	}
	if g, ok := ecs.Get(w, gem, component.GemComponent.Kind()); ok && value > 0 {
		g.Value = value
	}
	if cfg.LifetimeFrames > 0 {
		if err := ecs.Add(w, gem, component.TTLComponent.Kind(), &component.TTL{Frames: cfg.LifetimeFrames}); err != nil {
			return 0, fmt.Errorf("gem: add ttl: %w", err)
		}
	}
	return gem, nil
}
