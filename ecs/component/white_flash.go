package component

// WhiteFlash renders a sprite white on alternating intervals for Frames ticks.
// Enemies get one when they survive a weapon hit.
type WhiteFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
