package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type WeaponRefSpec struct {
	Type  string `yaml:"type"`
	Level int    `yaml:"level"`
}

type PlayerSpec struct {
	Name          string        `yaml:"name"`
	Health        float64       `yaml:"health"`
	Speed         float64       `yaml:"speed"`
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	Invincibility float64       `yaml:"invincibility"`
	IdleThreshold float64       `yaml:"idle_threshold"`
	Smoothing     float64       `yaml:"smoothing"`
	Weapon        WeaponRefSpec `yaml:"weapon"`
	UpgradeHealth float64       `yaml:"upgrade_health"`
	UpgradeAmmo   int           `yaml:"upgrade_ammo"`
	UpgradeSpeed  float64       `yaml:"upgrade_speed"`
}

type TargetSpec struct {
	RadiusMin int    `yaml:"radius_min"`
	RadiusMax int    `yaml:"radius_max"`
	Script    string `yaml:"script"`
}

type TowerSpec struct {
	Sight       float64   `yaml:"sight"`
	BulletSpeed float64   `yaml:"bullet_speed"`
	IdleAngles  []float64 `yaml:"idle_angles"`
	DwellMin    float64   `yaml:"dwell_min"`
	DwellMax    float64   `yaml:"dwell_max"`
	Script      string    `yaml:"script"`
}

type ChaserSpec struct {
	Sight            float64 `yaml:"sight"`
	FriendSight      float64 `yaml:"friend_sight"`
	Aggro            float64 `yaml:"aggro"`
	ContactKnockback float64 `yaml:"contact_knockback"`
	KnockbackScale   float64 `yaml:"knockback_scale"`
	Smoothing        float64 `yaml:"smoothing"`
	Script           string  `yaml:"script"`
}

type EnemiesSpec struct {
	DropChance  int        `yaml:"drop_chance"`
	Radius      float64    `yaml:"radius"`
	ShakeFactor float64    `yaml:"shake_factor"`
	ShakeRadius float64    `yaml:"shake_radius"`
	Target      TargetSpec `yaml:"target"`
	Tower       TowerSpec  `yaml:"tower"`
	Chaser      ChaserSpec `yaml:"chaser"`
}

type WeaponsSpec struct {
	MuzzleSpeed    float64                `yaml:"muzzle_speed"`
	MuzzleOffset   float64                `yaml:"muzzle_offset"`
	MaxAmmo        int                    `yaml:"max_ammo"`
	BulletLife     float64                `yaml:"bullet_life"`
	BulletRadius   float64                `yaml:"bullet_radius"`
	ConsumeAmmo    bool                   `yaml:"consume_ammo"`
	SpreadSpeedMin float64                `yaml:"spread_speed_min"`
	Table          map[string][][]float64 `yaml:"table"`
}

type CameraSpec struct {
	Smoothness     float64 `yaml:"smoothness"`
	ShakeDecay     float64 `yaml:"shake_decay"`
	ShakeMaxOffset float64 `yaml:"shake_max_offset"`
}

type RowSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Step float64 `yaml:"step"`
}

type DirectorSpec struct {
	StartDifficulty    float64 `yaml:"start_difficulty"`
	DifficultyStep     float64 `yaml:"difficulty_step"`
	QuotaPerDifficulty float64 `yaml:"quota_per_difficulty"`
	InitialBatch       int     `yaml:"initial_batch"`
	Transition         float64 `yaml:"transition"`
	GameOverGrace      float64 `yaml:"game_over_grace"`
	SpawnIntervalBase  float64 `yaml:"spawn_interval_base"`
	SpawnIntervalSlope float64 `yaml:"spawn_interval_slope"`
	SpawnIntervalMin   float64 `yaml:"spawn_interval_min"`
	MinPlayerDistance  float64 `yaml:"min_player_distance"`
	ProbeRadius        float64 `yaml:"probe_radius"`
	MaxSpawnAttempts   int     `yaml:"max_spawn_attempts"`
	HealthBonus        float64 `yaml:"health_bonus"`
	WaveCard           float64 `yaml:"wave_card"`
	UpgradeRow         RowSpec `yaml:"upgrade_row"`
	WeaponRow          RowSpec `yaml:"weapon_row"`
}

type PickupsSpec struct {
	TriggerRadius float64 `yaml:"trigger_radius"`
	DropLifetime  float64 `yaml:"drop_lifetime"`
	FlashAt       float64 `yaml:"flash_at"`
	HitEffectTTL  float64 `yaml:"hit_effect_ttl"`
}

type RenderSpec struct {
	Background YAMLColor `yaml:"background"`
	Player     YAMLColor `yaml:"player"`
	Wall       YAMLColor `yaml:"wall"`
	Target     YAMLColor `yaml:"target"`
	Tower      YAMLColor `yaml:"tower"`
	Chaser     YAMLColor `yaml:"chaser"`
	Bullet     YAMLColor `yaml:"bullet"`
	Pickup     YAMLColor `yaml:"pickup"`
	HitEffect  YAMLColor `yaml:"hit_effect"`
	Debug      YAMLColor `yaml:"debug"`
	HealthBar  YAMLColor `yaml:"health_bar"`
}

// Tuning bundles every spec the simulation reads.
type Tuning struct {
	Player   PlayerSpec
	Enemies  EnemiesSpec
	Weapons  WeaponsSpec
	Director DirectorSpec
	Pickups  PickupsSpec
	Camera   CameraSpec
}

func LoadTuning() (*Tuning, error) {
	var (
		t   Tuning
		err error
	)
	if t.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if t.Enemies, err = LoadSpec[EnemiesSpec]("enemies.yaml"); err != nil {
		return nil, err
	}
	if t.Weapons, err = LoadSpec[WeaponsSpec]("weapons.yaml"); err != nil {
		return nil, err
	}
	if t.Director, err = LoadSpec[DirectorSpec]("director.yaml"); err != nil {
		return nil, err
	}
	if t.Pickups, err = LoadSpec[PickupsSpec]("pickups.yaml"); err != nil {
		return nil, err
	}
	if t.Camera, err = LoadSpec[CameraSpec]("camera.yaml"); err != nil {
		return nil, err
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) validate() error {
	if t.Player.Health <= 0 {
		return fmt.Errorf("prefabs: player.yaml: health must be positive")
	}
	if t.Director.MaxSpawnAttempts <= 0 {
		return fmt.Errorf("prefabs: director.yaml: max_spawn_attempts must be positive")
	}
	for name, levels := range t.Weapons.Table {
		if len(levels) == 0 {
			return fmt.Errorf("prefabs: weapons.yaml: %s has no levels", name)
		}
		for i, row := range levels {
			if len(row) != 4 {
				return fmt.Errorf("prefabs: weapons.yaml: %s level %d: want 4 values, got %d", name, i, len(row))
			}
		}
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
