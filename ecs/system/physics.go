package system

import (
	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
)

// Contact is one overlap found by MoveAndCollide.
type Contact struct {
	Other ecs.Entity
	// Normal points away from Other.
	Normal geom.Vec2
	Depth  float64
	Static bool
}

// MoveAndCollide moves e by delta in one step, pushes it out of every static
// body it overlaps in discovery order, and reports every overlap. Dynamic
// bodies are reported only. It never applies damage.
func MoveAndCollide(w *ecs.World, e ecs.Entity, delta geom.Vec2) []Contact {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok || body.Static {
		return nil
	}

	pos := tr.Position.Add(delta)
	var contacts []Contact
	for _, other := range candidates(w, e, body, pos) {
		otherTr, ok := ecs.Get(w, other, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		otherBody, ok := ecs.Get(w, other, component.BodyComponent.Kind())
		if !ok {
			continue
		}
		mtv, hit := geom.Penetration(body.Collider, pos, otherBody.Collider, otherTr.Position)
		if !hit {
			continue
		}
		if otherBody.Static {
			pos = pos.Add(mtv)
		}
		contacts = append(contacts, Contact{
			Other:  other,
			Normal: mtv.Normalize(),
			Depth:  mtv.Len(),
			Static: otherBody.Static,
		})
	}
	tr.Position = pos
	return contacts
}

// candidates lists bodies e's mask may collide with: walls from the arena
// broad phase first, then every other body in creation order.
func candidates(w *ecs.World, e ecs.Entity, body *component.Body, pos geom.Vec2) []ecs.Entity {
	var out []ecs.Entity
	if body.Mask.Matches(component.LayerWall) {
		if arena := arenaOf(w); arena != nil && arena.Walls != nil {
			for _, wall := range arena.Walls.Query(body.Collider.Bounds(pos), nil) {
				if wall != e && !body.Excludes(wall) && ecs.IsAlive(w, wall) {
					out = append(out, wall)
				}
			}
		}
	}
	for _, other := range ecs.Query(w, component.BodyComponent.Kind()) {
		if other == e || body.Excludes(other) || ecs.Has(w, other, component.WallTagComponent.Kind()) {
			continue
		}
		otherBody, _ := ecs.Get(w, other, component.BodyComponent.Kind())
		if !body.Mask.Matches(otherBody.Layer) {
			continue
		}
		out = append(out, other)
	}
	return out
}

// Overlapping returns every body on a layer in mask that a collider at pos
// would overlap.
func Overlapping(w *ecs.World, col geom.Collider, pos geom.Vec2, mask component.Layer) []ecs.Entity {
	probe := &component.Body{Collider: col, Mask: mask}
	var out []ecs.Entity
	for _, other := range candidates(w, 0, probe, pos) {
		otherTr, ok := ecs.Get(w, other, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		otherBody, _ := ecs.Get(w, other, component.BodyComponent.Kind())
		if geom.Overlaps(col, pos, otherBody.Collider, otherTr.Position) {
			out = append(out, other)
		}
	}
	return out
}
