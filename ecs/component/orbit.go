package component

// Orbit moves an entity around Center (an ecs.Entity) each tick.
type Orbit struct {
	Center uint64
	Radius float64
	// Radians per tick.
	Speed float64
	Angle float64
}

var OrbitComponent = NewComponent[Orbit]()
