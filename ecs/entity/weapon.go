package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

// NewWeapon spawns an orbiting weapon around center.
func NewWeapon(w *ecs.World, cfg prefabs.WeaponTuning, center ecs.Entity) (ecs.Entity, error) {
	ct, ok := ecs.Get(w, center, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("weapon: center %v has no transform", center)
	}
	x := ct.X + cfg.Radius*math.Cos(cfg.StartAngle)
	y := ct.Y + cfg.Radius*math.Sin(cfg.StartAngle)
	weapon, err := spawnPrefab(w, cfg.Prefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("weapon: %w", err)
	}
	if err := ecs.Add(w, weapon, component.OrbitComponent.Kind(), &component.Orbit{
		Center: uint64(center),
		Radius: cfg.Radius,
		Speed:  cfg.Speed / common.TPS,
		Angle:  cfg.StartAngle,
	}); err != nil {
		return 0, fmt.Errorf("weapon: add orbit: %w", err)
	}
	return weapon, nil
}
