package system

import (
	"math"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// OrbitSystem swings orbiting entities around their center. The physics
// system drives their bodies towards the new transform, so weapons stay
// swept shapes that report overlaps.
type OrbitSystem struct{}

func NewOrbitSystem() *OrbitSystem { return &OrbitSystem{} }

func (s *OrbitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.OrbitComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, orbit *component.Orbit, tr *component.Transform) {
		center := ecs.Entity(orbit.Center)
		ct, ok := ecs.Get(w, center, component.TransformComponent.Kind())
		if !ok || w.PendingDestroy(center) {
			logf("orbit", "center %v gone, despawning %v", center, e)
			w.QueueDestroy(e)
			return
		}
		orbit.Angle = math.Mod(orbit.Angle+orbit.Speed, 2*math.Pi)
		tr.X = ct.X + orbit.Radius*math.Cos(orbit.Angle)
		tr.Y = ct.Y + orbit.Radius*math.Sin(orbit.Angle)
	})
}
