package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// RunStatsSystem folds this tick's events into the run's score.
type RunStatsSystem struct{}

func NewRunStatsSystem() *RunStatsSystem { return &RunStatsSystem{} }

func (s *RunStatsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, ok := w.First(component.RunStatsComponent.Kind())
	if !ok {
		return
	}
	stats, _ := ecs.Get(w, e, component.RunStatsComponent.Kind())
	if stats.Over {
		return
	}

	stats.Frames++
	stats.Kills += len(ecs.Events[ecs.EnemyKilledEvent](w, ecs.EventEnemyKilled))
	for _, g := range ecs.Events[ecs.GemCollectedEvent](w, ecs.EventGemCollected) {
		stats.Gems += g.Value
	}
	stats.Charms += len(ecs.Events[ecs.CharmEvent](w, ecs.EventCharmed))
	stats.Waves += len(ecs.Events[ecs.WaveFiredEvent](w, ecs.EventWaveFired))
	stats.EnemyContacts += len(gameCollisions(w, ecs.EnemyAndEnemy, ecs.CollisionStarted))
	if len(ecs.Events[ecs.PlayerDiedEvent](w, ecs.EventPlayerDied)) > 0 {
		stats.Over = true
	}
}
