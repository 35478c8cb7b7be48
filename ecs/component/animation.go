package component

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation selects a frame of the generated sheet for Sprite.Key. The frame
// image key is "<sprite key>/<current>/<frame>".
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

// Play switches to name, restarting only when the clip changes.
func (a *Animation) Play(name string) {
	if a == nil || a.Current == name {
		return
	}
	if _, ok := a.Defs[name]; !ok {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
}

var AnimationComponent = NewComponent[Animation]()
