package config

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed defaults.toml
var defaultsTOML string

// Config is the full compiled-in tuning table
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Physics PhysicsConfig `toml:"physics"`
	Biggest BiggestConfig `toml:"biggest"`
	Arena   ArenaConfig   `toml:"arena"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Debug   DebugConfig   `toml:"debug"`
}

type WindowConfig struct {
	TitleBiggest string `toml:"title_biggest"`
	TitleArena   string `toml:"title_arena"`
}

// PhysicsConfig controls the fixed step shared by both demos
type PhysicsConfig struct {
	FrameRate          int `toml:"frame_rate"`
	VelocityIterations int `toml:"velocity_iterations"`
	PositionIterations int `toml:"position_iterations"`
}

// TimeStep returns the fixed physics interval in seconds
func (p PhysicsConfig) TimeStep() float64 {
	return 1.0 / float64(p.FrameRate)
}

// BiggestConfig tunes the survival-of-the-biggest sandbox
type BiggestConfig struct {
	Gravity         [2]float64 `toml:"gravity"`
	GroundHalfWidth float64    `toml:"ground_half_width"`
	SizeDivisor     float64    `toml:"size_divisor"`
	Shape           string     `toml:"shape"`
	Density         float64    `toml:"density"`
	Friction        float64    `toml:"friction"`
	Restitution     float64    `toml:"restitution"`
	BoundsMin       [2]float64 `toml:"bounds_min"`
	BoundsMax       [2]float64 `toml:"bounds_max"`
}

// ArenaConfig tunes the two-paddle arena
type ArenaConfig struct {
	Gravity          [2]float64 `toml:"gravity"`
	HalfWidth        float64    `toml:"half_width"`
	Floor            float64    `toml:"floor"`
	Ceiling          float64    `toml:"ceiling"`
	PaddleX          float64    `toml:"paddle_x"`
	PaddleHalfWidth  float64    `toml:"paddle_half_width"`
	PaddleHalfHeight float64    `toml:"paddle_half_height"`
	PaddleStep       float64    `toml:"paddle_step"`
	BallRadius       float64    `toml:"ball_radius"`
	BallSpeed        float64    `toml:"ball_speed"`
	BallDensity      float64    `toml:"ball_density"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
	CueMs      int     `toml:"cue_ms"`
}

type LoggingConfig struct {
	Enabled    bool   `toml:"enabled"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

type DebugConfig struct {
	Profile    string `toml:"profile"`
	ProfileDir string `toml:"profile_dir"`
}

// Default decodes the embedded defaults, a broken embed is a build defect
func Default() *Config {
	cfg, err := Parse(defaultsTOML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Parse decodes TOML text and validates it, unknown keys are rejected
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

// Validate checks ranges that would otherwise break the simulation
func (c *Config) Validate() error {
	switch {
	case c.Physics.FrameRate <= 0:
		return fmt.Errorf("physics.frame_rate must be positive, got %d", c.Physics.FrameRate)
	case c.Physics.VelocityIterations <= 0 || c.Physics.PositionIterations <= 0:
		return fmt.Errorf("physics iterations must be positive, got %d/%d",
			c.Physics.VelocityIterations, c.Physics.PositionIterations)
	case !(c.Biggest.SizeDivisor > 0):
		return fmt.Errorf("biggest.size_divisor must be positive, got %v", c.Biggest.SizeDivisor)
	case c.Biggest.Shape != "circle" && c.Biggest.Shape != "box":
		return fmt.Errorf("biggest.shape must be circle or box, got %q", c.Biggest.Shape)
	case c.Biggest.BoundsMin[0] >= c.Biggest.BoundsMax[0] || c.Biggest.BoundsMin[1] >= c.Biggest.BoundsMax[1]:
		return fmt.Errorf("biggest bounds are empty")
	case c.Arena.Ceiling <= c.Arena.Floor:
		return fmt.Errorf("arena.ceiling must be above arena.floor")
	case c.Arena.PaddleX <= 0 || c.Arena.PaddleX >= c.Arena.HalfWidth:
		return fmt.Errorf("arena.paddle_x must lie inside (0, half_width)")
	case !(c.Arena.BallRadius > 0) || !(c.Arena.BallSpeed > 0):
		return fmt.Errorf("arena ball radius and speed must be positive")
	case c.Audio.SampleRate <= 0 || c.Audio.CueMs <= 0:
		return fmt.Errorf("audio sample_rate and cue_ms must be positive")
	case math.IsNaN(c.Audio.Volume) || c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must lie in [0, 1], got %v", c.Audio.Volume)
	case c.Logging.Enabled && c.Logging.File == "":
		return fmt.Errorf("logging.file is required when logging is enabled")
	case c.Debug.Profile != "" && c.Debug.Profile != "cpu" && c.Debug.Profile != "mem":
		return fmt.Errorf("debug.profile must be empty, cpu or mem, got %q", c.Debug.Profile)
	}
	return nil
}
