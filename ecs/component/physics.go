package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	// Box collider when Radius is zero.
	Width  float64
	Height float64
	Radius float64

	Mass       float64
	Friction   float64
	Elasticity float64
	// Damping is linear damping per second; velocity is scaled by
	// 1/(1+dt*Damping) every step.
	Damping float64
	// Sensor shapes report overlaps but never push.
	Sensor bool
	// Driven bodies follow their Transform instead of integrating forces.
	// Used for tweened formations and orbiting weapons.
	Driven bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
