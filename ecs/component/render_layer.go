package component

// RenderLayer sorts draw order. Index separates broad bands (background,
// actors, hud); Depth orders entities inside a band and is refreshed from the
// Y coordinate each tick so lower entities draw on top.
type RenderLayer struct {
	Index int
	Depth float64
}

var RenderLayerComponent = NewComponent[RenderLayer]()
