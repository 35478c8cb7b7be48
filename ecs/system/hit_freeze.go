package system

import (
	"github.com/milk9111/horde/ecs"
)

// HitFreezeSystem asks the game loop for a short freeze when the player is
// hit. The loop owns the pause since it decides whether the world ticks.
type HitFreezeSystem struct {
	Frames   int
	onFreeze func(frames int)
}

func NewHitFreezeSystem(frames int, onFreeze func(frames int)) *HitFreezeSystem {
	return &HitFreezeSystem{Frames: frames, onFreeze: onFreeze}
}

func (s *HitFreezeSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.Frames <= 0 {
		return
	}
	if len(w.Events().Read(ecs.EventPlayerHit)) == 0 {
		return
	}
	if s.onFreeze != nil {
		s.onFreeze(s.Frames)
	}
}
