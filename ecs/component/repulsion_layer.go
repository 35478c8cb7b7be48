package component

// RepulsionLayer lets entities opt into soft separation. Entities repel when
// their categories and masks overlap in both directions.
type RepulsionLayer struct {
	// Zero is treated as category 1.
	Category uint32 `yaml:"category,omitempty"`
	// Zero is treated as all bits set.
	Mask uint32 `yaml:"mask,omitempty"`
	// Radius overrides the repulsion system's default distance when > 0.
	Radius float64 `yaml:"radius,omitempty"`
}

var RepulsionLayerComponent = NewComponent[RepulsionLayer]()
