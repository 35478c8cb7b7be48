package ecs

import "github.com/milk9111/horde/ecs/component"

// EventType names an event stream.
type EventType string

const (
	EventCollision     EventType = "collision"
	EventGameCollision EventType = "game_collision"
	EventPlayerHit     EventType = "player_hit"
	EventPlayerDied    EventType = "player_died"
	EventEnemyKilled   EventType = "enemy_killed"
	EventGemCollected  EventType = "gem_collected"
	EventCharmed       EventType = "charmed"
	EventCharmExpired  EventType = "charm_expired"
	EventWaveFired     EventType = "wave_fired"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// CollisionStatus tells whether a shape pair started or stopped overlapping.
type CollisionStatus int

const (
	CollisionStarted CollisionStatus = iota
	CollisionStopped
)

func (s CollisionStatus) String() string {
	if s == CollisionStarted {
		return "started"
	}
	return "stopped"
}

// CollisionEvent is the raw pairwise overlap reported by the physics step.
// Layers are captured when the overlap changed, not when the event is read.
type CollisionEvent struct {
	Status  CollisionStatus
	A       Entity
	B       Entity
	LayersA component.CollisionLayer
	LayersB component.CollisionLayer
}

// GameCollisionKind identifies a classified collision.
type GameCollisionKind int

const (
	PlayerAndEnemy GameCollisionKind = iota + 1
	AllyAndEnemy
	EnemyAndEnemy
	ConvertingWeaponAndEnemy
	ConvertingWeaponAndAlly
	WeaponAndEnemy
	PlayerAndGem
)

func (k GameCollisionKind) String() string {
	switch k {
	case PlayerAndEnemy:
		return "player_and_enemy"
	case AllyAndEnemy:
		return "ally_and_enemy"
	case EnemyAndEnemy:
		return "enemy_and_enemy"
	case ConvertingWeaponAndEnemy:
		return "converting_weapon_and_enemy"
	case ConvertingWeaponAndAlly:
		return "converting_weapon_and_ally"
	case WeaponAndEnemy:
		return "weapon_and_enemy"
	case PlayerAndGem:
		return "player_and_gem"
	default:
		return "unknown"
	}
}

// GameCollisionEvent is a collision with its roles resolved. First always
// holds the role named first in Kind (player, ally, converting weapon,
// weapon) and Second the other one. EnemyAndEnemy keeps the raw order.
type GameCollisionEvent struct {
	Kind   GameCollisionKind
	Status CollisionStatus
	First  Entity
	Second Entity
}

// PlayerHitEvent is published when the player loses health.
type PlayerHitEvent struct {
	Player Entity
	Enemy  Entity
	Damage int
	Health int
}

// PlayerDiedEvent is published once when the player's health reaches zero.
type PlayerDiedEvent struct {
	Player Entity
}

// EnemyKilledEvent is published when an enemy is despawned by damage.
type EnemyKilledEvent struct {
	Enemy  Entity
	Killer Entity
	X, Y   float64
}

// GemCollectedEvent is published when the player picks up a gem.
type GemCollectedEvent struct {
	Player Entity
	Gem    Entity
	Value  int
}

// CharmEvent is published when an enemy converts to an ally and when it
// reverts.
type CharmEvent struct {
	Entity Entity
	Frames int
}

// WaveFiredEvent is published each time a wave spawner fires.
type WaveFiredEvent struct {
	Spawner Entity
	Wave    int
	Spawned int
}

// EventQueue is a per-tick FIFO. Events stay readable by every system until
// the world flushes at the end of the tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Read returns the events of typ in publish order without consuming them.
func (q *EventQueue) Read(typ EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// Publish pushes data onto w's queue under typ.
func Publish[T any](w *World, typ EventType, data T) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Data: data})
}

// Events returns the payloads of typ published so far this tick.
func Events[T any](w *World, typ EventType) []T {
	if w == nil {
		return nil
	}
	var out []T
	for _, evt := range w.events.Read(typ) {
		if data, ok := evt.Data.(T); ok {
			out = append(out, data)
		}
	}
	return out
}
