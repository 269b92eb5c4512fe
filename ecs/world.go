package ecs

import "fmt"

// World owns entities and their components. Structural removal during a tick
// goes through QueueDestroy; Sweep applies it at the tick boundary.
type World struct {
	entities entityStore
	stores   map[ComponentID]*SparseSet
	events   EventQueue

	queued   map[Entity]struct{}
	order    []Entity
	children map[Entity][]Entity
}

func NewWorld() *World {
	return &World{
		stores:   make(map[ComponentID]*SparseSet),
		queued:   make(map[Entity]struct{}),
		children: make(map[Entity][]Entity),
	}
}

func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes e and all of its components immediately. Systems
// should prefer QueueDestroy while a tick is running.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	delete(w.queued, e)
	kids := w.children[e]
	delete(w.children, e)
	w.entities.destroy(e)
	for _, child := range kids {
		DestroyEntity(w, child)
	}
	return true
}

func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns the live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.entities.live...)
}

// QueueDestroy marks e for removal at the next Sweep. Marking twice is a no-op.
func QueueDestroy(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	if _, ok := w.queued[e]; ok {
		return false
	}
	w.queued[e] = struct{}{}
	w.order = append(w.order, e)
	return true
}

func IsQueued(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	_, ok := w.queued[e]
	return ok
}

// Sweep destroys every queued entity, along with anything attached to it, and
// returns how many queued entities were removed.
func Sweep(w *World) int {
	if w == nil || len(w.order) == 0 {
		return 0
	}
	order := w.order
	w.order = nil
	removed := 0
	for _, e := range order {
		if DestroyEntity(w, e) {
			removed++
		}
	}
	clear(w.queued)
	return removed
}

// Attach ties child's lifetime to parent: destroying parent destroys child.
func Attach(w *World, parent, child Entity) error {
	if w == nil {
		return fmt.Errorf("ecs: attach %v: %w", child, ErrEntityNotAlive)
	}
	if !w.entities.isAlive(parent) {
		return fmt.Errorf("ecs: attach to parent %v: %w", parent, ErrEntityNotAlive)
	}
	if !w.entities.isAlive(child) {
		return fmt.Errorf("ecs: attach child %v: %w", child, ErrEntityNotAlive)
	}
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = newSparseSet()
		w.stores[id] = s
	}
	return s
}

func Add[T any](w *World, e Entity, kind ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("ecs: add component to %v: %w", e, ErrEntityNotAlive)
	}
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("ecs: add component to %v: %w", e, ErrNilComponent)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	return v, ok && v != nil
}

func Has[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

func Remove[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

// Count reports how many live entities carry kind.
func Count[T any](w *World, kind ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}

// First returns the earliest-created entity carrying kind.
func First[T any](w *World, kind ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.store(kind.ID(), false)
	if s.Len() == 0 {
		return 0, false
	}
	for _, e := range w.entities.live {
		if s.Has(e) {
			return e, true
		}
	}
	return 0, false
}

// Query returns the entities carrying kind in creation order.
func Query[T any](w *World, kind ComponentKind[T]) []Entity {
	if w == nil {
		return nil
	}
	s := w.store(kind.ID(), false)
	if s.Len() == 0 {
		return nil
	}
	out := make([]Entity, 0, s.Len())
	for _, e := range w.entities.live {
		if s.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// ForEach visits every entity carrying kind in creation order. The entity set
// is captured up front, so fn may add or queue entities freely; entities
// destroyed outright during the walk are skipped.
func ForEach[T any](w *World, kind ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range Query(w, kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka ComponentKind[A], kb ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range Query(w, ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka ComponentKind[A], kb ComponentKind[B], kc ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range Query(w, ka) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}
