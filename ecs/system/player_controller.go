package system

import (
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const defaultPlayerSpeed = 3.0

// PlayerControllerSystem turns input into the player's velocity. Diagonals
// are normalized so every direction moves at MoveSpeed.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, vel *component.Velocity) {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
			vel.X, vel.Y = 0, 0
			return
		}
		speed := player.MoveSpeed
		if speed == 0 {
			speed = defaultPlayerSpeed
		}
		dx, dy := input.MoveX, input.MoveY
		// analog sticks below full tilt keep their magnitude
		if dx*dx+dy*dy > 1 {
			dx, dy = common.Normalize(dx, dy)
		}
		vel.X = dx * speed
		vel.Y = dy * speed
	})
}
