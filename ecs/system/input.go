package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// KeyState reports whether a key is held. Tests swap it for a fake.
type KeyState func(ebiten.Key) bool

type InputSystem struct {
	pressed KeyState
}

func NewInputSystem() *InputSystem {
	return &InputSystem{pressed: ebiten.IsKeyPressed}
}

// NewInputSystemWith reads keys through pressed instead of ebiten.
func NewInputSystemWith(pressed KeyState) *InputSystem {
	return &InputSystem{pressed: pressed}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	const stickDeadzone = 0.2

	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if i.pressed(k) {
				return true
			}
		}
		return false
	}

	moveX, moveY := 0.0, 0.0
	if held(ebiten.KeyA, ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if held(ebiten.KeyD, ebiten.KeyArrowRight) {
		moveX += 1
	}
	if held(ebiten.KeyW, ebiten.KeyArrowUp) {
		moveY -= 1
	}
	if held(ebiten.KeyS, ebiten.KeyArrowDown) {
		moveY += 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX, moveY = lx, ly
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
	})
}
