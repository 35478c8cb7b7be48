package component

// Charmed marks an enemy that currently fights for the player. When Frames
// reaches zero the charm system restores the saved enemy setup.
type Charmed struct {
	Frames int

	Layers   CollisionLayer
	Movement Movement
	// Repulsion is nil when the enemy did not repel before the charm.
	Repulsion *RepulsionLayer
}

var CharmedComponent = NewComponent[Charmed]()
