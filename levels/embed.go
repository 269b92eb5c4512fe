package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/milk9111/wavesurvivor/geom"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrNoWalls         = errors.New("levels: map has no walls")
	ErrNoSpawnZones    = errors.New("levels: map has no usable spawn zones")
	ErrMissingPosition = errors.New("levels: map is missing a required position")
)

const (
	layerWalls      = "Walls"
	layerSpawnZones = "SpawnZones"
	layerPositions  = "Positions"

	PositionPlayerSpawn  = "player_spawn"
	PositionUpgradeSpawn = "upgrade_spawn"
)

// Map is the subset of a Tiled JSON map the game reads.
type Map struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	TileWidth  int     `json:"tilewidth"`
	TileHeight int     `json:"tileheight"`
	Layers     []Layer `json:"layers"`
}

type Layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Objects []Object `json:"objects"`
}

type Object struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (o Object) Rect() geom.Rectangle {
	return geom.Rectangle{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// Level is a validated arena ready to be turned into entities.
type Level struct {
	Width      float64
	Height     float64
	Walls      []geom.Rectangle
	SpawnZones []geom.Rectangle
	Positions  map[string]geom.Vec2
}

// SpawnArea is the summed area of every spawn zone.
func (l *Level) SpawnArea() float64 {
	if l == nil {
		return 0
	}
	total := 0.0
	for _, z := range l.SpawnZones {
		total += z.Area()
	}
	return total
}

// LoadLevel reads name from ./levels on disk when present, else from the
// embedded copy.
func LoadLevel(name string) (*Level, error) {
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return lvl, nil
}

func Parse(data []byte) (*Level, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal map: %w", err)
	}

	lvl := &Level{
		Width:     float64(m.Width * m.TileWidth),
		Height:    float64(m.Height * m.TileHeight),
		Positions: make(map[string]geom.Vec2),
	}
	for _, layer := range m.Layers {
		switch layer.Name {
		case layerWalls:
			for _, obj := range layer.Objects {
				if obj.Width > 0 && obj.Height > 0 {
					lvl.Walls = append(lvl.Walls, obj.Rect())
				}
			}
		case layerSpawnZones:
			for _, obj := range layer.Objects {
				if r := obj.Rect(); r.Area() > 0 {
					lvl.SpawnZones = append(lvl.SpawnZones, r)
				}
			}
		case layerPositions:
			for _, obj := range layer.Objects {
				// first definition wins
				if _, ok := lvl.Positions[obj.Name]; !ok {
					lvl.Positions[obj.Name] = geom.V(obj.X, obj.Y)
				}
			}
		}
	}

	if len(lvl.Walls) == 0 {
		return nil, ErrNoWalls
	}
	if len(lvl.SpawnZones) == 0 {
		return nil, ErrNoSpawnZones
	}
	for _, name := range []string{PositionPlayerSpawn, PositionUpgradeSpawn} {
		if _, ok := lvl.Positions[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPosition, name)
		}
	}
	return lvl, nil
}
