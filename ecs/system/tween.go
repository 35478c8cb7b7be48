package system

import (
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// TweenSystem plays one-axis transform tweens. Only the step's axis is
// written, so steering or physics may own the other one.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem { return &TweenSystem{} }

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.TweenComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tw *component.Tween, tr *component.Transform) {
		if advanceTween(tw, tr) {
			ecs.Remove(w, e, component.TweenComponent.Kind())
		}
	})
}

// advanceTween moves tw forward one tick and reports whether it finished.
func advanceTween(tw *component.Tween, tr *component.Transform) bool {
	// zero length steps complete immediately
	for !tw.Done() {
		step := tw.Steps[tw.Index]
		if !tw.Started {
			tw.Start = axisValue(tr, step.Axis)
			tw.Elapsed = 0
			tw.Started = true
		}
		if step.Frames <= 0 {
			setAxis(tr, step.Axis, tw.Start+step.Delta)
			tw.Index++
			tw.Started = false
			continue
		}

		tw.Elapsed++
		t := float64(tw.Elapsed) / float64(step.Frames)
		if t >= 1 {
			setAxis(tr, step.Axis, tw.Start+step.Delta)
			tw.Index++
			tw.Started = false
		} else {
			setAxis(tr, step.Axis, tw.Start+step.Delta*t)
		}
		break
	}
	return tw.Done()
}

func axisValue(tr *component.Transform, axis component.Axis) float64 {
	if axis == component.AxisY {
		return tr.Y
	}
	return tr.X
}

func setAxis(tr *component.Transform, axis component.Axis, v float64) {
	if axis == component.AxisY {
		tr.Y = v
		return
	}
	tr.X = v
}

// InvaderSteps builds the classic invader march: slide right, drop, slide
// left, drop, repeated steps times.
func InvaderSteps(steps int, width, height float64) []component.TweenStep {
	slide := common.Seconds(4)
	drop := common.Seconds(0.05)
	out := make([]component.TweenStep, 0, steps*4)
	for i := 0; i < steps; i++ {
		out = append(out,
			component.TweenStep{Axis: component.AxisX, Delta: width, Frames: slide},
			component.TweenStep{Axis: component.AxisY, Delta: height, Frames: drop},
			component.TweenStep{Axis: component.AxisX, Delta: -width, Frames: slide},
			component.TweenStep{Axis: component.AxisY, Delta: height, Frames: drop},
		)
	}
	return out
}
