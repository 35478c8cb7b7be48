package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

func NewPlayer(w *ecs.World, cfg *prefabs.GameConfig) (ecs.Entity, error) {
	return NewPlayerAt(w, cfg, 0, 0)
}

func NewPlayerAt(w *ecs.World, cfg *prefabs.GameConfig, x, y float64) (ecs.Entity, error) {
	if cfg == nil {
		def := prefabs.DefaultGameConfig()
		cfg = &def
	}
	player, err := spawnPrefab(w, cfg.Player.Prefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if ok && p.InvulnerableFrames == 0 {
		p.InvulnerableFrames = cfg.Player.InvulnerableFrames
	}

	tint, ok := ecs.Get(w, player, component.HitTintComponent.Kind())
	if !ok {
		tint = &component.HitTint{}
	}
	tint.Healthy = cfg.Player.HealthyColor.Color
	tint.Hit = cfg.Player.HitColor.Color
	if err := ecs.Add(w, player, component.HitTintComponent.Kind(), tint); err != nil {
		return 0, fmt.Errorf("player: add hit tint: %w", err)
	}

	if s, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok {
		s.Tint = tint.Healthy
	}
	return player, nil
}
