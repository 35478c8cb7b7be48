package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// DepthSortSystem refreshes RenderLayer.Depth from Y so entities lower on
// screen draw over the ones behind them.
type DepthSortSystem struct{}

func NewDepthSortSystem() *DepthSortSystem { return &DepthSortSystem{} }

func (s *DepthSortSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.RenderLayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, layer *component.RenderLayer, tr *component.Transform) {
		layer.Depth = tr.Y
	})
}
