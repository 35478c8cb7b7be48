package system

import (
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// CameraSystem moves the camera entity towards its target. The camera's
// Transform is the world point drawn at the center of the screen.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, camComp.TargetName)
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t := camComp.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	camTransform.X = common.Lerp64(camTransform.X, targetTransform.X, t)
	camTransform.Y = common.Lerp64(camTransform.Y, targetTransform.Y, t)
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" || name == "" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}

// Viewport converts between world units and screen pixels for the current
// camera.
type Viewport struct {
	CamX, CamY float64
	Zoom       float64
	Width      float64
	Height     float64
}

// CameraViewport reads the camera entity. A world without a camera looks at
// the origin.
func CameraViewport(w *ecs.World, width, height int) Viewport {
	vp := Viewport{Zoom: 1, Width: float64(width), Height: float64(height)}
	cam, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return vp
	}
	if tr, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		vp.CamX, vp.CamY = tr.X, tr.Y
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		vp.Zoom = c.Zoom
	}
	return vp
}

// Scale is the number of screen pixels per world unit.
func (vp Viewport) Scale() float64 {
	return common.PixelsPerUnit * vp.Zoom
}

func (vp Viewport) ToScreen(x, y float64) (float64, float64) {
	s := vp.Scale()
	return (x-vp.CamX)*s + vp.Width/2, (y-vp.CamY)*s + vp.Height/2
}
