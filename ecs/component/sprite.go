package component

import "image/color"

// Sprite references an image in the render system's registry by key. Images
// are generated on the draw path so simulation code never touches ebiten.
type Sprite struct {
	Key     string
	OriginX float64
	OriginY float64
	// Size in world units the image is scaled to.
	Width  float64
	Height float64

	FlipX    bool
	Rotation float64
	Tint     color.Color

	// BaseRotation and BaseFlipX are the art's resting pose, applied before
	// facing adjustments.
	BaseRotation float64
	BaseFlipX    bool
}

var SpriteComponent = NewComponent[Sprite]()
