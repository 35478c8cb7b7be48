package component

// Velocity is the linear velocity in world units per second. Bodies owned by
// the physics system read it before the step and write it back after.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()

// Acceleration is integrated into Velocity once per tick.
type Acceleration struct {
	X float64
	Y float64
}

var AccelerationComponent = NewComponent[Acceleration]()

// MaxSpeed clamps each velocity axis to [-Value, Value] for entities that
// follow the nearest player.
type MaxSpeed struct {
	Value float64
}

var MaxSpeedComponent = NewComponent[MaxSpeed]()
