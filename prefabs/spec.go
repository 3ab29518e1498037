package prefabs

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/firefight/combat"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadSpec decodes a YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, err
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, errors.Wrapf(err, "prefabs: unmarshal %s", filename)
	}

	return spec, nil
}

// Vec3Spec is a [x, y, z] triple.
type Vec3Spec [3]float64

func (v Vec3Spec) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// Seconds is a duration written in YAML as a number of seconds.
type Seconds float64

func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

type WeaponsFile struct {
	Weapons     []WeaponSpec     `yaml:"weapons"`
	Projectiles []ProjectileSpec `yaml:"projectiles"`
}

type WeaponSpec struct {
	Name           string   `yaml:"name"`
	Mode           string   `yaml:"mode"`
	Delivery       string   `yaml:"delivery"`
	FireRate       float64  `yaml:"fire_rate"`
	Magazine       int      `yaml:"magazine"`
	Loaded         *int     `yaml:"loaded"`
	Reserve        int      `yaml:"reserve"`
	Unlimited      bool     `yaml:"unlimited"`
	ReloadSeconds  Seconds  `yaml:"reload_seconds"`
	SpreadDegrees  float64  `yaml:"spread_degrees"`
	Damage         float64  `yaml:"damage"`
	Range          float64  `yaml:"range"`
	MuzzleSpeed    float64  `yaml:"muzzle_speed"`
	DamageOverride *float64 `yaml:"damage_override"`
	Lifetime       Seconds  `yaml:"lifetime_seconds"`
	Projectile     string   `yaml:"projectile"`
}

// ProjectileSpec is the body template a projectile weapon spawns.
type ProjectileSpec struct {
	Name   string  `yaml:"name"`
	Radius float64 `yaml:"radius"`
}

// Config converts the spec into a validated weapon config.
func (s WeaponSpec) Config() (combat.WeaponConfig, error) {
	mode, err := combat.ParseFireMode(s.Mode)
	if err != nil {
		return combat.WeaponConfig{}, errors.Wrapf(err, "weapon %s", s.Name)
	}
	delivery, err := combat.ParseDelivery(s.Delivery)
	if err != nil {
		return combat.WeaponConfig{}, errors.Wrapf(err, "weapon %s", s.Name)
	}
	reserve := s.Reserve
	if s.Unlimited {
		reserve = combat.UnlimitedReserve
	}
	cfg := combat.WeaponConfig{
		Name:               s.Name,
		Mode:               mode,
		Delivery:           delivery,
		FireRate:           s.FireRate,
		MagazineCapacity:   s.Magazine,
		Loaded:             s.Loaded,
		ReserveAmmo:        reserve,
		ReloadDuration:     s.ReloadSeconds.Duration(),
		SpreadDegrees:      s.SpreadDegrees,
		Damage:             s.Damage,
		Range:              s.Range,
		MuzzleSpeed:        s.MuzzleSpeed,
		DamageOverride:     s.DamageOverride,
		ProjectileLifetime: s.Lifetime.Duration(),
	}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return combat.WeaponConfig{}, err
	}
	return cfg, nil
}

type PlayerSpec struct {
	Name         string    `yaml:"name"`
	Role         string    `yaml:"role"`
	Health       float64   `yaml:"health"`
	MoveSpeed    float64   `yaml:"move_speed"`
	EyeHeight    float64   `yaml:"eye_height"`
	Radius       float64   `yaml:"radius"`
	Height       float64   `yaml:"height"`
	Spawn        Vec3Spec  `yaml:"spawn"`
	Loadout      []string  `yaml:"loadout"`
	MuzzleOffset *Vec3Spec `yaml:"muzzle_offset"`
}

type HostileSpec struct {
	Name               string       `yaml:"name"`
	Role               string       `yaml:"role"`
	Health             float64      `yaml:"health"`
	Radius             float64      `yaml:"radius"`
	Height             float64      `yaml:"height"`
	Movement           string       `yaml:"movement"`
	NavSpeed           float64      `yaml:"nav_speed"`
	Pursuit            PursuitSpec  `yaml:"pursuit"`
	Chase              ChaseSpec    `yaml:"chase"`
	DiagnosticsSeconds Seconds      `yaml:"diagnostics_seconds"`
	Hitboxes           []HitboxSpec `yaml:"hitboxes"`
}

const (
	MovementPursuit = "pursuit"
	MovementChase   = "chase"
)

type PursuitSpec struct {
	SnapRadius        float64  `yaml:"snap_radius"`
	DestinationRadius float64  `yaml:"destination_radius"`
	RepathSeconds     Seconds  `yaml:"repath_seconds"`
	TargetRoles       []string `yaml:"target_roles"`
}

func (s PursuitSpec) Config() combat.PursuitConfig {
	return combat.PursuitConfig{
		SnapRadius:        s.SnapRadius,
		DestinationRadius: s.DestinationRadius,
		RepathInterval:    s.RepathSeconds.Duration(),
		TargetRoles:       s.TargetRoles,
	}
}

type ChaseSpec struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	StopDistance float64 `yaml:"stop_distance"`
}

func (s ChaseSpec) Chaser() combat.Chaser {
	c := combat.DefaultChaser()
	if s.MoveSpeed > 0 {
		c.MoveSpeed = s.MoveSpeed
	}
	if s.StopDistance > 0 {
		c.StopDistance = s.StopDistance
	}
	return c
}

// HitboxSpec is a child collider whose hits are routed to the parent's
// health, e.g. a head above the body.
type HitboxSpec struct {
	Name   string   `yaml:"name"`
	Offset Vec3Spec `yaml:"offset"`
	Radius float64  `yaml:"radius"`
	Height float64  `yaml:"height"`
}

type ArenaSpec struct {
	Name          string       `yaml:"name"`
	TickRate      int          `yaml:"tick_rate"`
	Seed          int64        `yaml:"seed"`
	ImpactSeconds Seconds      `yaml:"impact_seconds"`
	Nav           NavSpec      `yaml:"nav"`
	Walls         []WallSpec   `yaml:"walls"`
	Props         []PropSpec   `yaml:"props"`
	Sensors       []SensorSpec `yaml:"sensors"`
	Spawn         SpawnSpec    `yaml:"spawn"`
}

type NavSpec struct {
	Origin   Vec3Spec `yaml:"origin"`
	CellSize float64  `yaml:"cell_size"`
	Width    int      `yaml:"width"`
	Depth    int      `yaml:"depth"`
}

type WallSpec struct {
	Min   Vec3Spec   `yaml:"min"`
	Max   Vec3Spec   `yaml:"max"`
	Color *YAMLColor `yaml:"color"`
}

type PropSpec struct {
	Name       string     `yaml:"name"`
	Position   Vec3Spec   `yaml:"position"`
	HalfX      float64    `yaml:"half_x"`
	HalfZ      float64    `yaml:"half_z"`
	Height     float64    `yaml:"height"`
	Durability float64    `yaml:"durability"`
	Armor      float64    `yaml:"armor"`
	Color      *YAMLColor `yaml:"color"`
}

// SensorSpec is a trigger volume: projectiles pass through it.
type SensorSpec struct {
	Name     string   `yaml:"name"`
	Position Vec3Spec `yaml:"position"`
	Radius   float64  `yaml:"radius"`
	Height   float64  `yaml:"height"`
}

type SpawnSpec struct {
	Center            Vec3Spec `yaml:"center"`
	Size              Vec3Spec `yaml:"size"`
	Count             int      `yaml:"count"`
	MinPlayerDistance float64  `yaml:"min_player_distance"`
	MaxAttempts       int      `yaml:"max_attempts"`
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return errors.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return errors.Wrapf(err, "invalid color %s", value.Value)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
