package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/prefabs"
)

// GemCollectSystem despawns gems the player touches and reports their value.
type GemCollectSystem struct{}

func NewGemCollectSystem() *GemCollectSystem { return &GemCollectSystem{} }

func (s *GemCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range gameCollisions(w, ecs.PlayerAndGem, ecs.CollisionStarted) {
		player, gem := evt.First, evt.Second
		if !usable(w, gem) {
			continue
		}
		value := 1
		if g, ok := ecs.Get(w, gem, component.GemComponent.Kind()); ok {
			value = g.Value
		}
		w.QueueDestroy(gem)
		ecs.Publish(w, ecs.EventGemCollected, ecs.GemCollectedEvent{Player: player, Gem: gem, Value: value})
	}
}

// GemDropSystem spawns gems where enemies carrying GemDrop were killed.
type GemDropSystem struct {
	Config prefabs.GemTuning
	rng    *rand.Rand
}

func NewGemDropSystem(cfg prefabs.GemTuning, rng *rand.Rand) *GemDropSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 1))
	}
	return &GemDropSystem{Config: cfg, rng: rng}
}

func (s *GemDropSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range ecs.Events[ecs.EnemyKilledEvent](w, ecs.EventEnemyKilled) {
		drop, ok := ecs.Get(w, evt.Enemy, component.GemDropComponent.Kind())
		if !ok {
			continue
		}
		for i := 0; i < drop.Count; i++ {
			x, y := evt.X, evt.Y
			if drop.Count > 1 {
				a := s.rng.Float64() * 2 * math.Pi
				x += math.Cos(a) * 0.4
				y += math.Sin(a) * 0.4
			}
			if _, err := entity.NewGem(w, s.Config, x, y, drop.Value); err != nil {
				logf("gems", "drop: %v", err)
				return
			}
		}
	}
}

// GemBobSystem floats gems up and down around where they dropped.
type GemBobSystem struct{}

func NewGemBobSystem() *GemBobSystem { return &GemBobSystem{} }

func (s *GemBobSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.GemComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, gem *component.Gem, t *component.Transform) {
		if !gem.Initialized {
			gem.BaseY = t.Y
			gem.Initialized = true
			if gem.BobSpeed == 0 {
				gem.BobSpeed = 0.08
			}
		}

		gem.BobPhase += gem.BobSpeed
		t.Y = gem.BaseY + math.Sin(gem.BobPhase)*gem.BobAmplitude
	})
}
