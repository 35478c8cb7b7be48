package system

import (
	"math"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

// SteeringSystem accelerates every entity with a Movement towards its target.
type SteeringSystem struct {
	Tuning prefabs.SteeringTuning
}

func NewSteeringSystem(tuning prefabs.SteeringTuning) *SteeringSystem {
	return &SteeringSystem{Tuning: tuning}
}

type point struct {
	x, y float64
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	players := positions(w, component.PlayerTagComponent.Kind())
	enemies := positions(w, component.EnemyTagComponent.Kind())

	ecs.ForEach3(w, component.MovementComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, m *component.Movement, tr *component.Transform, vel *component.Velocity) {
		if w.PendingDestroy(e) {
			return
		}
		switch m.Kind {
		case component.MovementTracking:
			target, ok := firstPoint(players)
			if !ok {
				return
			}
			s.approach(vel, tr, target, s.Tuning.TrackingMaxDist, s.Tuning.TrackingAccel)
			face(w, e, tr, target)
		case component.MovementSlowWalking:
			target, ok := firstPoint(players)
			if !ok {
				return
			}
			s.approach(vel, tr, target, s.Tuning.SlowWalkingMaxDist, s.Tuning.SlowWalkingAccel)
			face(w, e, tr, target)
		case component.MovementRunningGroup:
			target, ok := firstPoint(players)
			if !ok {
				return
			}
			dx, dy, dist := common.DirectionTo(tr.X, tr.Y, target.x, target.y)
			if dist > s.Tuning.RunningReaimDist || (m.DirX == 0 && m.DirY == 0) {
				m.DirX, m.DirY = dx, dy
			}
			vel.X += m.DirX * s.Tuning.RunningAccel
			vel.Y += m.DirY * s.Tuning.RunningAccel
			face(w, e, tr, target)
		case component.MovementFollowNearestPlayer:
			acc, ok := ecs.Get(w, e, component.AccelerationComponent.Kind())
			if !ok {
				acc = &component.Acceleration{}
				_ = ecs.Add(w, e, component.AccelerationComponent.Kind(), acc)
			}
			target, ok := nearestPoint(players, tr.X, tr.Y)
			if !ok {
				acc.X, acc.Y = 0, 0
				return
			}
			dx, dy, _ := common.DirectionTo(tr.X, tr.Y, target.x, target.y)
			acc.X = dx * s.Tuning.FollowAccel
			acc.Y = dy * s.Tuning.FollowAccel
		case component.MovementSeekNearestEnemy:
			target, ok := nearestPoint(enemies, tr.X, tr.Y)
			if !ok {
				return
			}
			s.approach(vel, tr, target, s.Tuning.TrackingMaxDist, s.Tuning.TrackingAccel)
			face(w, e, tr, target)
		}
	})

	ecs.ForEach2(w, component.AccelerationComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, acc *component.Acceleration, vel *component.Velocity) {
		vel.X += acc.X / common.TPS
		vel.Y += acc.Y / common.TPS
	})

	ecs.ForEach3(w, component.MaxSpeedComponent.Kind(), component.MovementComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, limit *component.MaxSpeed, m *component.Movement, vel *component.Velocity) {
		if limit.Value <= 0 || m.Kind != component.MovementFollowNearestPlayer {
			return
		}
		vel.X = common.Clamp(vel.X, -limit.Value, limit.Value)
		vel.Y = common.Clamp(vel.Y, -limit.Value, limit.Value)
	})
}

func (s *SteeringSystem) approach(vel *component.Velocity, tr *component.Transform, target point, maxDist, accel float64) {
	dx, dy, dist := common.DirectionTo(tr.X, tr.Y, target.x, target.y)
	strength := math.Min(dist, maxDist)
	vel.X += dx * strength * accel
	vel.Y += dy * strength * accel
}

// face turns the sprite towards target. Sprites to the right of their target
// are mirrored so the art never renders upside down.
func face(w *ecs.World, e ecs.Entity, tr *component.Transform, target point) {
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	angle := common.AngleBetween(tr.X, tr.Y, target.x, target.y)
	if tr.X > target.x {
		sprite.FlipX = !sprite.BaseFlipX
		tr.Rotation = angle + math.Pi - sprite.BaseRotation
	} else {
		sprite.FlipX = sprite.BaseFlipX
		tr.Rotation = angle + sprite.BaseRotation
	}
}

func positions[T any](w *ecs.World, tag component.ComponentKind[T]) []point {
	var out []point
	ecs.ForEach2(w, tag, component.TransformComponent.Kind(), func(e ecs.Entity, _ *T, tr *component.Transform) {
		if w.PendingDestroy(e) {
			return
		}
		out = append(out, point{x: tr.X, y: tr.Y})
	})
	return out
}

func firstPoint(ps []point) (point, bool) {
	if len(ps) == 0 {
		return point{}, false
	}
	return ps[0], true
}

func nearestPoint(ps []point, x, y float64) (point, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range ps {
		d := (p.x-x)*(p.x-x) + (p.y-y)*(p.y-y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return point{}, false
	}
	return ps[best], true
}
