package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// ClusterRepulsionSystem nudges crowded entities apart so hordes spread out
// instead of stacking on one point.
type ClusterRepulsionSystem struct {
	Radius  float64
	Divisor float64

	rng *rand.Rand
}

func NewClusterRepulsionSystem(radius, divisor float64, seed uint64) *ClusterRepulsionSystem {
	if radius <= 0 {
		radius = 2
	}
	if divisor <= 0 {
		divisor = 50
	}
	return &ClusterRepulsionSystem{
		Radius:  radius,
		Divisor: divisor,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (cr *ClusterRepulsionSystem) Update(w *ecs.World) {
	if cr == nil || w == nil {
		return
	}

	type entInfo struct {
		e     ecs.Entity
		layer *component.RepulsionLayer
		tr    *component.Transform
		vel   *component.Velocity
	}

	list := make([]entInfo, 0)

	ecs.ForEach3(w, component.RepulsionLayerComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, layer *component.RepulsionLayer, tr *component.Transform, vel *component.Velocity) {
		if w.PendingDestroy(e) {
			return
		}
		list = append(list, entInfo{e: e, layer: layer, tr: tr, vel: vel})
	})

	n := len(list)
	if n < 2 {
		return
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bi := list[i]
			bj := list[j]
			if !repels(bi.layer, bj.layer) {
				continue
			}

			radius := cr.Radius
			if r := math.Max(bi.layer.Radius, bj.layer.Radius); r > 0 {
				radius = r
			}

			// vector from i -> j
			dx := bj.tr.X - bi.tr.X
			dy := bj.tr.Y - bi.tr.Y
			dist := math.Hypot(dx, dy)
			if dist > radius {
				continue
			}
			if dist == 0 {
				dx = (cr.rng.Float64() - 0.5) * 1e-3
				dy = (cr.rng.Float64() - 0.5) * 1e-3
				dist = math.Hypot(dx, dy)
			}

			nx := dx / dist
			ny := dy / dist
			push := (radius - dist) / cr.Divisor

			bi.vel.X -= nx * push
			bi.vel.Y -= ny * push
			bj.vel.X += nx * push
			bj.vel.Y += ny * push
		}
	}
}

func repels(a, b *component.RepulsionLayer) bool {
	category := func(l *component.RepulsionLayer) uint32 {
		if l.Category == 0 {
			return 1
		}
		return l.Category
	}
	mask := func(l *component.RepulsionLayer) uint32 {
		if l.Mask == 0 {
			return math.MaxUint32
		}
		return l.Mask
	}
	return category(a)&mask(b) != 0 && category(b)&mask(a) != 0
}
