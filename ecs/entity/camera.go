package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return NewCameraAt(w, 0, 0)
}

func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	camera, err := spawnPrefab(w, "camera.yaml", x, y)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}
