package prefabs

import (
	"errors"
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

// GameConfig is the tuning file shared by every system. Durations are in
// ticks at 60 TPS unless the field name says otherwise.
type GameConfig struct {
	Player     PlayerTuning      `yaml:"player"`
	Charm      CharmTuning       `yaml:"charm"`
	Steering   SteeringTuning    `yaml:"steering"`
	Gems       GemTuning         `yaml:"gems"`
	Map        MapTuning         `yaml:"map"`
	Weapons    []WeaponTuning    `yaml:"weapons"`
	Waves      []WaveTuning      `yaml:"waves"`
	Formations []FormationTuning `yaml:"formations"`
}

type PlayerTuning struct {
	Prefab             string     `yaml:"prefab"`
	InvulnerableFrames int        `yaml:"invulnerable_frames"`
	HealthyColor       *YAMLColor `yaml:"healthy_color"`
	HitColor           *YAMLColor `yaml:"hit_color"`

	// HitFreezeFrames pauses the simulation briefly when the player is hit.
	HitFreezeFrames int `yaml:"hit_freeze_frames"`
}

type CharmTuning struct {
	Frames int `yaml:"frames"`
}

type SteeringTuning struct {
	TrackingAccel      float64 `yaml:"tracking_accel"`
	TrackingMaxDist    float64 `yaml:"tracking_max_dist"`
	SlowWalkingAccel   float64 `yaml:"slow_walking_accel"`
	SlowWalkingMaxDist float64 `yaml:"slow_walking_max_dist"`
	RunningAccel       float64 `yaml:"running_accel"`
	RunningReaimDist   float64 `yaml:"running_reaim_dist"`
	FollowAccel        float64 `yaml:"follow_accel"`
	RepulsionRadius    float64 `yaml:"repulsion_radius"`
	RepulsionDivisor   float64 `yaml:"repulsion_divisor"`
}

type GemTuning struct {
	Prefab string `yaml:"prefab"`
	Value  int    `yaml:"value"`
	// LifetimeFrames despawns uncollected gems; zero keeps them forever.
	LifetimeFrames int `yaml:"lifetime_frames"`
}

type MapTuning struct {
	Size      int     `yaml:"size"`
	GridWidth float64 `yaml:"grid_width"`
}

type WeaponTuning struct {
	Prefab string  `yaml:"prefab"`
	Radius float64 `yaml:"radius"`
	// Speed is radians per second.
	Speed      float64 `yaml:"speed"`
	StartAngle float64 `yaml:"start_angle"`
}

type WaveTuning struct {
	Kind           string `yaml:"kind"`
	Movement       string `yaml:"movement"`
	IntervalFrames int    `yaml:"interval_frames"`
	Size           int    `yaml:"size"`
	Count          int    `yaml:"count"`
	Repeat         int    `yaml:"repeat"`
	Script         string `yaml:"script"`
}

type FormationTuning struct {
	Kind        string  `yaml:"kind"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Spacing     float64 `yaml:"spacing"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Steps       int     `yaml:"steps"`
	DelayFrames int     `yaml:"delay_frames"`
}

var ErrInvalidConfig = errors.New("prefabs: invalid game config")

// LoadGameConfig reads game.yaml, fills defaults and validates the result.
func LoadGameConfig() (*GameConfig, error) {
	cfg, err := LoadSpec[GameConfig]("game.yaml")
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultGameConfig is the tuning used when game.yaml leaves a field empty.
func DefaultGameConfig() GameConfig {
	var cfg GameConfig
	cfg.ApplyDefaults()
	return cfg
}

func (c *GameConfig) ApplyDefaults() {
	if c.Player.Prefab == "" {
		c.Player.Prefab = "player.yaml"
	}
	if c.Player.InvulnerableFrames == 0 {
		c.Player.InvulnerableFrames = 60
	}
	if c.Player.HealthyColor == nil {
		c.Player.HealthyColor = &YAMLColor{Color: color.NRGBA{R: 0, G: 120, B: 255, A: 255}}
	}
	if c.Player.HitColor == nil {
		c.Player.HitColor = &YAMLColor{Color: color.NRGBA{R: 229, G: 7, B: 0, A: 255}}
	}
	if c.Charm.Frames == 0 {
		c.Charm.Frames = 300
	}

	s := &c.Steering
	if s.TrackingAccel == 0 {
		s.TrackingAccel = 0.1
	}
	if s.TrackingMaxDist == 0 {
		s.TrackingMaxDist = 5
	}
	if s.SlowWalkingAccel == 0 {
		s.SlowWalkingAccel = 0.03
	}
	if s.SlowWalkingMaxDist == 0 {
		s.SlowWalkingMaxDist = 2
	}
	if s.RunningAccel == 0 {
		s.RunningAccel = 0.5
	}
	if s.RunningReaimDist == 0 {
		s.RunningReaimDist = 20
	}
	if s.FollowAccel == 0 {
		s.FollowAccel = 7
	}
	if s.RepulsionRadius == 0 {
		s.RepulsionRadius = 2
	}
	if s.RepulsionDivisor == 0 {
		s.RepulsionDivisor = 50
	}

	if c.Gems.Prefab == "" {
		c.Gems.Prefab = "gem.yaml"
	}
	if c.Gems.Value == 0 {
		c.Gems.Value = 1
	}
	if c.Map.Size == 0 {
		c.Map.Size = 41
	}
	if c.Map.GridWidth == 0 {
		c.Map.GridWidth = 0.05
	}
}

// Validate reports every problem found, joined into one error.
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Player.HitFreezeFrames < 0 {
		errs = append(errs, fmt.Errorf("player.hit_freeze_frames must be >= 0, got %d", c.Player.HitFreezeFrames))
	}
	if c.Player.InvulnerableFrames < 0 {
		errs = append(errs, fmt.Errorf("player.invulnerable_frames must be >= 0, got %d", c.Player.InvulnerableFrames))
	}
	if c.Charm.Frames <= 0 {
		errs = append(errs, fmt.Errorf("charm.frames must be > 0, got %d", c.Charm.Frames))
	}
	if c.Map.Size <= 0 {
		errs = append(errs, fmt.Errorf("map.size must be > 0, got %d", c.Map.Size))
	}
	for i, w := range c.Weapons {
		if w.Prefab == "" {
			errs = append(errs, fmt.Errorf("weapons[%d].prefab is required", i))
		}
		if w.Radius <= 0 {
			errs = append(errs, fmt.Errorf("weapons[%d].radius must be > 0", i))
		}
	}
	for i, w := range c.Waves {
		if !knownEnemy(w.Kind) {
			errs = append(errs, fmt.Errorf("waves[%d].kind %q is not an enemy", i, w.Kind))
		}
		if !knownMovement(w.Movement) {
			errs = append(errs, fmt.Errorf("waves[%d].movement %q is not a wave movement", i, w.Movement))
		}
		if w.IntervalFrames <= 0 {
			errs = append(errs, fmt.Errorf("waves[%d].interval_frames must be > 0", i))
		}
		if w.Size <= 0 || w.Count <= 0 {
			errs = append(errs, fmt.Errorf("waves[%d] size and count must be > 0", i))
		}
		if w.Repeat < 0 {
			errs = append(errs, fmt.Errorf("waves[%d].repeat must be >= 0", i))
		}
	}
	for i, f := range c.Formations {
		if !knownEnemy(f.Kind) {
			errs = append(errs, fmt.Errorf("formations[%d].kind %q is not an enemy", i, f.Kind))
		}
		if f.Rows <= 0 || f.Cols <= 0 {
			errs = append(errs, fmt.Errorf("formations[%d] rows and cols must be > 0", i))
		}
		if f.Steps <= 0 {
			errs = append(errs, fmt.Errorf("formations[%d].steps must be > 0", i))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// EnemyPrefab returns the prefab file for an enemy kind.
func EnemyPrefab(kind string) string {
	return "enemy_" + kind + ".yaml"
}

var enemyNames = []string{"blue_fish", "big_red_fish", "pumpkin", "skeleton_head", "knife"}

func knownEnemy(kind string) bool {
	for _, k := range enemyNames {
		if k == kind {
			return true
		}
	}
	return false
}

func knownMovement(m string) bool {
	switch m {
	case "tracking", "slow_walking", "running_group":
		return true
	}
	return false
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
