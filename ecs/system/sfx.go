package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	SfxHit    = "hit"
	SfxKill   = "kill"
	SfxGem    = "gem"
	SfxCharm  = "charm"
	SfxWave   = "wave"
	SfxDeath  = "death"
	SfxExpire = "expire"
)

var sfxByEvent = map[ecs.EventType]string{
	ecs.EventPlayerHit:    SfxHit,
	ecs.EventEnemyKilled:  SfxKill,
	ecs.EventGemCollected: SfxGem,
	ecs.EventCharmed:      SfxCharm,
	ecs.EventCharmExpired: SfxExpire,
	ecs.EventWaveFired:    SfxWave,
	ecs.EventPlayerDied:   SfxDeath,
}

// SfxEventSystem queues a sound on the first Sfx component for each kind of
// gameplay event seen this tick. The audio system does the playing.
type SfxEventSystem struct{}

func NewSfxEventSystem() *SfxEventSystem { return &SfxEventSystem{} }

func (s *SfxEventSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, ok := w.First(component.SfxComponent.Kind())
	if !ok {
		return
	}
	sfx, _ := ecs.Get(w, e, component.SfxComponent.Kind())
	for _, typ := range []ecs.EventType{
		ecs.EventPlayerHit,
		ecs.EventPlayerDied,
		ecs.EventEnemyKilled,
		ecs.EventGemCollected,
		ecs.EventCharmed,
		ecs.EventCharmExpired,
		ecs.EventWaveFired,
	} {
		if len(w.Events().Read(typ)) > 0 {
			sfx.Queue(sfxByEvent[typ])
		}
	}
}
