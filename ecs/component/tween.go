package component

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// TweenStep interpolates one axis of Transform by Delta over Frames ticks.
// The start value is captured when the step begins.
type TweenStep struct {
	Axis   Axis
	Delta  float64
	Frames int
}

// Tween plays Steps in order with linear easing. The tween system removes
// the component after the last step.
type Tween struct {
	Steps   []TweenStep
	Index   int
	Elapsed int
	Start   float64
	Started bool
}

func (t *Tween) Done() bool {
	return t == nil || t.Index >= len(t.Steps)
}

var TweenComponent = NewComponent[Tween]()
