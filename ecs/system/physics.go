package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// Every game shape shares one collision type; layers decide who may touch
// through shape filters, so a single handler sees every overlap exactly once.
const collisionTypeGame cp.CollisionType = 1

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	dt            float64

	entities map[ecs.Entity]*bodyInfo
	// layers captured when a pair began touching, reported again when it
	// separates so both halves of a contact classify the same way
	contacts map[shapePair]contactLayers
	pending  []ecs.CollisionEvent
}

type bodyInfo struct {
	body    *cp.Body
	shape   *cp.Shape
	damping float64
	driven  bool
}

type shapePair struct {
	a, b *cp.Shape
}

type contactLayers struct {
	a, b component.CollisionLayer
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		dt:       1.0 / common.TPS,
		entities: make(map[ecs.Entity]*bodyInfo),
		contacts: make(map[shapePair]contactLayers),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body. Used when a new run starts on a fresh world.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.contacts = make(map[shapePair]contactLayers)
	ps.pending = nil
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}

	ps.ensureHandlers()
	// removals may fire separate callbacks, so cleanup runs before the
	// pending list is published
	ps.syncEntities(w)
	ps.pushState(w)

	ps.space.Step(ps.dt)

	ps.pullState(w)
	ps.publishEvents(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeGame, collisionTypeGame)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		a, b := arb.Shapes()
		layers := contactLayers{a: shapeLayers(a), b: shapeLayers(b)}
		sys.contacts[shapePair{a, b}] = layers
		sys.queue(ecs.CollisionStarted, a, b, layers)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return
		}
		a, b := arb.Shapes()
		layers, ok := sys.contacts[shapePair{a, b}]
		if ok {
			delete(sys.contacts, shapePair{a, b})
		} else if layers, ok = sys.contacts[shapePair{b, a}]; ok {
			delete(sys.contacts, shapePair{b, a})
			a, b = b, a
		} else {
			return
		}
		sys.queue(ecs.CollisionStopped, a, b, layers)
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) queue(status ecs.CollisionStatus, a, b *cp.Shape, layers contactLayers) {
	ea, okA := a.UserData.(ecs.Entity)
	eb, okB := b.UserData.(ecs.Entity)
	if !okA || !okB {
		return
	}
	ps.pending = append(ps.pending, ecs.CollisionEvent{
		Status:  status,
		A:       ea,
		B:       eb,
		LayersA: layers.a,
		LayersB: layers.b,
	})
}

func (ps *PhysicsSystem) publishEvents(w *ecs.World) {
	for _, evt := range ps.pending {
		ecs.Publish(w, ecs.EventCollision, evt)
	}
	ps.pending = ps.pending[:0]
}

func shapeLayers(s *cp.Shape) component.CollisionLayer {
	return component.CollisionLayer{
		Group: component.GameLayer(s.Filter.Categories),
		Mask:  component.GameLayer(s.Filter.Mask),
	}
}

func layerFilter(layer component.CollisionLayer) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(layer.Group),
		Mask:       uint(layer.Mask),
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(e, transform, bodyComp)
			ps.entities[e] = info
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape

		// layers change at runtime (charm), so the filter follows the component
		layer := component.CollisionLayer{}
		if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
			layer = *l
		}
		filter := layerFilter(layer)
		if info.shape.Filter != filter {
			info.shape.SetFilter(filter)
		}
		info.damping = bodyComp.Damping
		// tweened entities follow their tween until it finishes
		info.driven = bodyComp.Driven || ecs.Has(w, e, component.TweenComponent.Kind())
	})
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	radius := bodyComp.Radius
	width, height := bodyComp.Width, bodyComp.Height
	if radius <= 0 && (width <= 0 || height <= 0) {
		radius = 0.5
	}

	var moment float64
	if radius > 0 {
		moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, width, height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionTypeGame)
	shape.UserData = e

	info := &bodyInfo{body: body, shape: shape, damping: bodyComp.Damping, driven: bodyComp.Driven}
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, _ float64, dt float64) {
		if info.driven {
			return
		}
		// linear damping per second, applied per step
		cp.BodyUpdateVelocity(b, gravity, 1/(1+dt*info.damping), dt)
	})

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return info
}

// pushState copies ECS velocities into bodies. Driven bodies get the velocity
// that lands them on their Transform at the end of the step.
func (ps *PhysicsSystem) pushState(w *ecs.World) {
	for e, info := range ps.entities {
		body := info.body
		// rotation is purely visual
		body.SetAngle(0)
		body.SetAngularVelocity(0)

		if info.driven {
			t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				continue
			}
			pos := body.Position()
			body.SetVelocity((t.X-pos.X)/ps.dt, (t.Y-pos.Y)/ps.dt)
			continue
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			body.SetVelocity(v.X, v.Y)
		}
	}
}

func (ps *PhysicsSystem) pullState(w *ecs.World) {
	for e, info := range ps.entities {
		// driven bodies keep their Transform but still report how fast
		// they moved
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && !info.driven {
			pos := info.body.Position()
			t.X = pos.X
			t.Y = pos.Y
		}
		if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			vel := info.body.Velocity()
			v.X = vel.X
			v.Y = vel.Y
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil && ps.space.ContainsShape(info.shape) {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && ps.space.ContainsBody(info.body) {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// BodyCount reports how many entities currently own a body in the space.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}
