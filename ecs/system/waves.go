package system

import (
	"math/rand/v2"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
)

const (
	waveOriginRange    = 10.0
	waveOriginDeadzone = 10.0
	trackingSpread     = 3.0
	groupSpread        = 10.0
	slowWalkDeadzone   = 3.0
)

// SpawnFunc creates one enemy. Tests replace it to observe placement.
type SpawnFunc func(w *ecs.World, kind component.EnemyKind, x, y float64, movement component.Movement) (ecs.Entity, error)

// WaveSystem ticks every EnemyWave and spawns groups around the player when
// a wave's timer runs out.
type WaveSystem struct {
	Spawn SpawnFunc

	rng     *rand.Rand
	scripts waveScriptCache
	elapsed int
}

func NewWaveSystem(seed uint64) *WaveSystem {
	return &WaveSystem{
		Spawn: entity.NewEnemy,
		rng:   rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d)),
	}
}

// ReloadScripts drops compiled wave scripts so the next firing reads them
// from disk again.
func (s *WaveSystem) ReloadScripts() {
	if s == nil {
		return
	}
	s.scripts.invalidate()
}

func (s *WaveSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.elapsed++

	player, hasPlayer := s.player(w)

	ecs.ForEach(w, component.EnemyWaveComponent.Kind(), func(e ecs.Entity, wave *component.EnemyWave) {
		if wave.Repeat > 0 && wave.Fired >= wave.Repeat {
			return
		}
		wave.TimerFrames++
		if wave.TimerFrames < wave.IntervalFrames {
			return
		}
		wave.TimerFrames = 0
		if !hasPlayer {
			return
		}

		size, count := wave.Size, wave.Count
		if ws := s.scripts.get(wave.Script); ws != nil {
			var err error
			size, count, err = ws.run(wave.Fired, s.elapsed, size, count)
			if err != nil {
				logf("waves", "%v", err)
			}
		}

		spawned := s.fire(w, wave, player, size, count)
		wave.Fired++
		logf("waves", "%s wave %d: %d spawned", wave.Kind, wave.Fired, spawned)
		ecs.Publish(w, ecs.EventWaveFired, ecs.WaveFiredEvent{Spawner: e, Wave: wave.Fired, Spawned: spawned})
	})
}

func (s *WaveSystem) player(w *ecs.World) (point, bool) {
	p, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return point{}, false
	}
	tr, ok := ecs.Get(w, p, component.TransformComponent.Kind())
	if !ok {
		return point{}, false
	}
	return point{x: tr.X, y: tr.Y}, true
}

func (s *WaveSystem) fire(w *ecs.World, wave *component.EnemyWave, player point, size, count int) int {
	spawn := s.Spawn
	if spawn == nil {
		spawn = entity.NewEnemy
	}

	spawned := 0
	for g := 0; g < count; g++ {
		ox := (s.rng.Float64()*2 - 1) * waveOriginRange
		oy := (s.rng.Float64()*2 - 1) * waveOriginRange
		ox, oy = common.MoveFromDeadzone(ox, oy, waveOriginDeadzone)
		ox += player.x
		oy += player.y

		for i := 0; i < size; i++ {
			x, y, movement := s.place(wave.Movement, ox, oy, player)
			if _, err := spawn(w, wave.Kind, x, y, movement); err != nil {
				logf("waves", "spawn %s: %v", wave.Kind, err)
				continue
			}
			spawned++
		}
	}
	return spawned
}

func (s *WaveSystem) place(kind component.MovementKind, ox, oy float64, player point) (float64, float64, component.Movement) {
	movement := component.Movement{Kind: kind}
	switch kind {
	case component.MovementSlowWalking:
		dx, dy := common.RandomInRadius(s.rng, groupSpread)
		x, y := common.MoveFromDeadzone(ox+dx, oy+dy, slowWalkDeadzone)
		return x, y, movement
	case component.MovementRunningGroup:
		dx, dy := common.RandomInRadius(s.rng, groupSpread)
		x, y := ox+dx, oy+dy
		movement.DirX, movement.DirY = common.Normalize(player.x-x, player.y-y)
		return x, y, movement
	default:
		dx, dy := common.RandomInRadius(s.rng, trackingSpread)
		return ox + dx, oy + dy, movement
	}
}
