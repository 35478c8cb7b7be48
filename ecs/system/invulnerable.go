package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// InvulnerableSystem counts invulnerability windows down and removes them at
// zero. Windows inserted with zero frames last until removed by hand.
type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem { return &InvulnerableSystem{} }

func (s *InvulnerableSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Frames <= 0 {
			return
		}
		inv.Frames--
		if inv.Frames == 0 {
			_ = ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
