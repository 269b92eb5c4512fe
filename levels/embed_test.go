package levels

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedArena(t *testing.T) {
	lvl, err := LoadLevel("arena.json")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if lvl.Width != 1600 || lvl.Height != 1600 {
		t.Fatalf("unexpected size %vx%v", lvl.Width, lvl.Height)
	}
	if len(lvl.Walls) == 0 || len(lvl.SpawnZones) == 0 {
		t.Fatalf("expected walls and spawn zones")
	}
	if lvl.SpawnArea() <= 0 {
		t.Fatalf("spawn area should be positive")
	}
	spawn := lvl.Positions[PositionPlayerSpawn]
	for _, wall := range lvl.Walls {
		if wall.Contains(spawn) {
			t.Fatalf("player spawn %+v inside wall %+v", spawn, wall)
		}
	}
}

func TestParseRejectsIncompleteMaps(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "no_walls",
			src:  `{"width":10,"height":10,"tilewidth":16,"tileheight":16,"layers":[{"name":"SpawnZones","objects":[{"x":0,"y":0,"width":10,"height":10}]}]}`,
			want: ErrNoWalls,
		},
		{
			name: "zero_area_zone",
			src:  `{"width":10,"height":10,"tilewidth":16,"tileheight":16,"layers":[{"name":"Walls","objects":[{"x":0,"y":0,"width":10,"height":10}]},{"name":"SpawnZones","objects":[{"x":0,"y":0,"width":0,"height":10}]}]}`,
			want: ErrNoSpawnZones,
		},
		{
			name: "missing_upgrade_spawn",
			src:  `{"width":10,"height":10,"tilewidth":16,"tileheight":16,"layers":[{"name":"Walls","objects":[{"x":0,"y":0,"width":10,"height":10}]},{"name":"SpawnZones","objects":[{"x":20,"y":20,"width":10,"height":10}]},{"name":"Positions","objects":[{"name":"player_spawn","x":50,"y":50}]}]}`,
			want: ErrMissingPosition,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := Parse([]byte("{")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}
