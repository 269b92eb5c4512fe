package entity

import (
	"fmt"

	"github.com/milk9111/wavesurvivor/ecs"
	"github.com/milk9111/wavesurvivor/ecs/component"
	"github.com/milk9111/wavesurvivor/geom"
	"github.com/milk9111/wavesurvivor/prefabs"
)

// Factory builds entities from the loaded prefab tuning.
type Factory struct {
	tuning *prefabs.Tuning
	table  *component.WeaponTable
}

func NewFactory(tuning *prefabs.Tuning) (*Factory, error) {
	if tuning == nil {
		return nil, fmt.Errorf("entity: new factory: nil tuning")
	}
	table, err := weaponTable(tuning.Weapons)
	if err != nil {
		return nil, err
	}
	return &Factory{tuning: tuning, table: table}, nil
}

func (f *Factory) Tuning() *prefabs.Tuning {
	if f == nil {
		return nil
	}
	return f.tuning
}

func (f *Factory) WeaponTable() *component.WeaponTable {
	if f == nil {
		return nil
	}
	return f.table
}

func weaponTable(spec prefabs.WeaponsSpec) (*component.WeaponTable, error) {
	table := &component.WeaponTable{Levels: make(map[component.WeaponType][]component.WeaponStats, len(spec.Table))}
	for name, rows := range spec.Table {
		wt, ok := component.ParseWeaponType(name)
		if !ok {
			return nil, fmt.Errorf("entity: weapon table: unknown family %q", name)
		}
		levels := make([]component.WeaponStats, 0, len(rows))
		for i, row := range rows {
			if len(row) != 4 {
				return nil, fmt.Errorf("entity: weapon table: %s level %d: want 4 values, got %d", name, i, len(row))
			}
			levels = append(levels, component.WeaponStats{
				Damage:      row[0],
				ROF:         row[1],
				Projectiles: int(row[2]),
				Spread:      row[3],
			})
		}
		table.Levels[wt] = levels
	}
	return table, nil
}

// addArea creates a trigger volume owned by owner and tied to its lifetime.
func addArea(w *ecs.World, owner ecs.Entity, radius float64, target component.Group) (ecs.Entity, error) {
	area := ecs.CreateEntity(w)
	if err := ecs.Add(w, area, component.AreaComponent.Kind(), &component.Area{
		Owner:    owner,
		Collider: geom.Circle(radius),
		Target:   target,
	}); err != nil {
		return 0, fmt.Errorf("entity: add area: %w", err)
	}
	if err := ecs.Attach(w, owner, area); err != nil {
		return 0, fmt.Errorf("entity: attach area: %w", err)
	}
	return area, nil
}

func addTransform(w *ecs.World, e ecs.Entity, pos geom.Vec2, rotation float64) error {
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: rotation})
}
