package entity

import (
	"fmt"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/levels"
)

const wallCellSize = 64

// BuildArena creates the arena singleton and a static body for every wall.
func (f *Factory) BuildArena(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("entity: build arena: nil level")
	}
	arena := NewArena(w, lvl.SpawnZones, lvl.Positions)
	if err := ecs.Add(w, arena, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: lvl.Width, Height: lvl.Height}); err != nil {
		return 0, fmt.Errorf("entity: build arena: %w", err)
	}
	for _, r := range lvl.Walls {
		if _, err := BuildWall(w, r); err != nil {
			return 0, err
		}
	}
	return arena, nil
}

// NewArena creates an arena with no walls yet.
func NewArena(w *ecs.World, zones []geom.Rectangle, positions map[string]geom.Vec2) ecs.Entity {
	total := 0.0
	for _, z := range zones {
		total += z.Area()
	}
	if positions == nil {
		positions = make(map[string]geom.Vec2)
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ArenaComponent.Kind(), &component.Arena{
		Walls:      geom.NewGrid[ecs.Entity](wallCellSize),
		SpawnZones: append([]geom.Rectangle(nil), zones...),
		SpawnArea:  total,
		Positions:  positions,
	})
	return e
}

// BuildWall adds a static wall body centred on r and registers it with the
// arena broad phase.
func BuildWall(w *ecs.World, r geom.Rectangle) (ecs.Entity, error) {
	arenaEnt, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("entity: build wall: no arena")
	}
	arena, _ := ecs.Get(w, arenaEnt, component.ArenaComponent.Kind())

	e := ecs.CreateEntity(w)
	center := r.Center()
	body := &component.Body{
		Collider: geom.Rect(r.W, r.H),
		Layer:    component.LayerWall,
		Static:   true,
	}
	if err := addTransform(w, e, center, 0); err != nil {
		return 0, fmt.Errorf("entity: build wall: %w", err)
	}
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), body)
	_ = ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{})
	arena.Walls.Insert(e, body.Collider.Bounds(center))
	return e, nil
}
