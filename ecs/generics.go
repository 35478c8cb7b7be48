package ecs

import "github.com/milk9111/horde/ecs/component"

func typedStore[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	s := &sparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add inserts or replaces the component of the given kind on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	s := typedStore(w, kind, true)
	if s == nil {
		return component.ErrInvalidComponentKind
	}
	s.set(e.id(), value)
	return nil
}

// Remove deletes the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := typedStore(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := typedStore(w, kind, false)
	return s != nil && s.has(e.id())
}

// Get returns the stored pointer, so callers may mutate in place.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := typedStore(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// ForEach visits every live entity carrying kind. Entities destroyed by fn
// during iteration are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := typedStore(w, kind, false)
	if s == nil {
		return
	}
	ids := append([]entityID(nil), s.ids()...)
	for _, id := range ids {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		v, ok := s.get(id)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := typedStore(w, kb, false)
	if sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := sb.get(e.id())
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := typedStore(w, kc, false)
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c, ok := sc.get(e.id())
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := typedStore(w, kd, false)
	if sd == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		d, ok := sd.get(e.id())
		if !ok {
			return
		}
		fn(e, a, b, c, d)
	})
}
