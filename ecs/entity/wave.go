package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

// NewWaveSpawner creates a spawner entity from a tuning entry.
func NewWaveSpawner(w *ecs.World, cfg prefabs.WaveTuning) (ecs.Entity, error) {
	movement, err := component.ParseMovementKind(cfg.Movement)
	if err != nil {
		return 0, fmt.Errorf("wave: %w", err)
	}
	kind := component.EnemyKind(cfg.Kind)
	if !kind.Valid() {
		return 0, fmt.Errorf("wave: unknown enemy kind %q", cfg.Kind)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.EnemyWaveComponent.Kind(), &component.EnemyWave{
		Kind:           kind,
		Movement:       movement,
		IntervalFrames: cfg.IntervalFrames,
		Size:           cfg.Size,
		Count:          cfg.Count,
		Repeat:         cfg.Repeat,
		Script:         cfg.Script,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("wave: add enemy wave: %w", err)
	}
	return e, nil
}

// NewFormation creates a formation spawner from a tuning entry.
func NewFormation(w *ecs.World, cfg prefabs.FormationTuning) (ecs.Entity, error) {
	kind := component.EnemyKind(cfg.Kind)
	if !kind.Valid() {
		return 0, fmt.Errorf("formation: unknown enemy kind %q", cfg.Kind)
	}
	spacing := cfg.Spacing
	if spacing <= 0 {
		spacing = 1
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FormationComponent.Kind(), &component.Formation{
		Kind:        kind,
		Rows:        cfg.Rows,
		Cols:        cfg.Cols,
		Spacing:     spacing,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Steps:       cfg.Steps,
		DelayFrames: cfg.DelayFrames,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("formation: add formation: %w", err)
	}
	return e, nil
}
