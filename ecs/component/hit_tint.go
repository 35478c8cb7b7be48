package component

import "image/color"

// HitTint colors a sprite while the entity is touching something harmful or
// recovering from a hit.
type HitTint struct {
	Healthy  color.Color
	Hit      color.Color
	Contacts int
	Active   bool
}

var HitTintComponent = NewComponent[HitTint]()
