package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Controller kinds for each paddle
const (
	ControllerHuman = "human"
	ControllerAI    = "ai"
)

// AI difficulty presets, as a fraction of the field width per time unit
var Difficulties = map[string]float64{
	"easy":    0.03,
	"classic": 0.04,
	"medium":  0.31,
	"hard":    0.32,
	"god":     0.4,
}

// Config holds every tunable of a match. It is fixed once the simulation
// starts; nothing in the core mutates it.
type Config struct {
	// Field
	FieldWidth  float64 `toml:"field_width"`
	FieldHeight float64 `toml:"field_height"`
	MarginX     float64 `toml:"margin_x"`
	MarginY     float64 `toml:"margin_y"`

	// Paddles
	PaddleBlocks     int     `toml:"paddle_blocks"`
	PaddleBlockSize  float64 `toml:"paddle_block_size"`
	HumanPaddleSpeed float64 `toml:"human_paddle_speed"`
	AIPaddleSpeed    float64 `toml:"ai_paddle_speed"`
	HumanHoldFrames  int     `toml:"human_hold_frames"` // Frames a key press keeps a paddle moving

	// Ball
	BallBaseSpeed      float64 `toml:"ball_base_speed"`
	BallSpeedIncrement float64 `toml:"ball_speed_increment"`
	BallSize           float64 `toml:"ball_size"`
	MaxBounceAngle     float64 `toml:"max_bounce_angle"` // Degrees from horizontal
	DegreesPerUnit     float64 `toml:"degrees_per_unit"` // Bounce rotation per unit of paddle offset
	ServeSeedY         float64 `toml:"serve_seed_y"`

	// Timing
	Quantum       float64 `toml:"quantum"`         // Ball substep, in scaled time units
	TimeScale     float64 `toml:"time_scale"`      // Scaled units per wall-clock second
	MaxFrameDelta float64 `toml:"max_frame_delta"` // Cap on scaled time consumed by one frame
	FrameRate     int     `toml:"frame_rate"`

	// Match
	PointsToWin int    `toml:"points_to_win"` // 0 plays forever
	Left        string `toml:"left"`
	Right       string `toml:"right"`
	Difficulty  string `toml:"difficulty"`

	// Runtime
	Sound    bool   `toml:"sound"`
	Headless bool   `toml:"headless"`
	Frames   int    `toml:"frames"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

// Default returns the classic arcade setup: an 800x500 map, AI against AI
func Default() Config {
	const (
		width  = 800.0
		height = 500.0
	)

	return Config{
		FieldWidth:  width,
		FieldHeight: height,
		MarginX:     30,
		MarginY:     15,

		PaddleBlocks:     3,
		PaddleBlockSize:  20,
		HumanPaddleSpeed: width * 0.60,
		AIPaddleSpeed:    width * Difficulties["classic"],
		HumanHoldFrames:  8,

		BallBaseSpeed:      height * 0.1,
		BallSpeedIncrement: 5,
		BallSize:           20,
		MaxBounceAngle:     40,
		DegreesPerUnit:     1,
		ServeSeedY:         0.2,

		Quantum:       0.005,
		TimeScale:     5,
		MaxFrameDelta: 1,
		FrameRate:     60,

		PointsToWin: 0,
		Left:        ControllerAI,
		Right:       ControllerAI,
		Difficulty:  "classic",

		Sound:    true,
		Frames:   3600,
		LogLevel: "info",
		LogFile:  "pong.log",
	}
}

// Load reads a TOML file on top of the defaults. Keys absent from the file
// keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	// The AI speed follows the difficulty preset and the field width unless
	// the file sets it explicitly.
	if !md.IsDefined("ai_paddle_speed") {
		if err := cfg.ApplyDifficulty(cfg.Difficulty); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// ApplyDifficulty sets the AI paddle speed from a named preset
func (c *Config) ApplyDifficulty(name string) error {
	factor, ok := Difficulties[name]
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, name)
	}
	c.Difficulty = name
	c.AIPaddleSpeed = c.FieldWidth * factor
	return nil
}

// FrameDuration is the wall-clock length of one rendered frame
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Validate rejects configurations that would produce undefined motion
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field_width", c.FieldWidth},
		{"field_height", c.FieldHeight},
		{"paddle_block_size", c.PaddleBlockSize},
		{"human_paddle_speed", c.HumanPaddleSpeed},
		{"ai_paddle_speed", c.AIPaddleSpeed},
		{"ball_base_speed", c.BallBaseSpeed},
		{"ball_speed_increment", c.BallSpeedIncrement},
		{"ball_size", c.BallSize},
		{"degrees_per_unit", c.DegreesPerUnit},
		{"serve_seed_y", c.ServeSeedY},
		{"quantum", c.Quantum},
		{"time_scale", c.TimeScale},
		{"max_frame_delta", c.MaxFrameDelta},
	}
	for _, p := range positive {
		if !finite(p.value) || p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	margins := []struct {
		name  string
		value float64
	}{
		{"margin_x", c.MarginX},
		{"margin_y", c.MarginY},
	}
	for _, m := range margins {
		if !finite(m.value) || m.value < 0 {
			return fmt.Errorf("%w: %s must be finite and not negative, got %v", ErrInvalidConfig, m.name, m.value)
		}
	}
	if !finite(c.MaxBounceAngle) || c.MaxBounceAngle <= 0 || c.MaxBounceAngle >= 90 {
		return fmt.Errorf("%w: max_bounce_angle must be between 0 and 90, got %v", ErrInvalidConfig, c.MaxBounceAngle)
	}
	if serve := math.Atan(c.ServeSeedY) * 180 / math.Pi; serve >= c.MaxBounceAngle {
		return fmt.Errorf("%w: serve angle %.1f exceeds max_bounce_angle %v", ErrInvalidConfig, serve, c.MaxBounceAngle)
	}
	if c.PaddleBlocks < 1 {
		return fmt.Errorf("%w: paddle_blocks must be at least 1, got %d", ErrInvalidConfig, c.PaddleBlocks)
	}
	if c.FrameRate < 1 {
		return fmt.Errorf("%w: frame_rate must be at least 1, got %d", ErrInvalidConfig, c.FrameRate)
	}
	if c.PointsToWin < 0 {
		return fmt.Errorf("%w: points_to_win must not be negative, got %d", ErrInvalidConfig, c.PointsToWin)
	}
	if c.HumanHoldFrames < 0 {
		return fmt.Errorf("%w: human_hold_frames must not be negative", ErrInvalidConfig)
	}

	controllers := []struct{ side, kind string }{{"left", c.Left}, {"right", c.Right}}
	for _, ctl := range controllers {
		if ctl.kind != ControllerHuman && ctl.kind != ControllerAI {
			return fmt.Errorf("%w: %s controller must be %q or %q, got %q", ErrInvalidConfig, ctl.side, ControllerHuman, ControllerAI, ctl.kind)
		}
	}

	g := c.Geometry()
	if g.LimitX <= 0 || g.Top <= g.Bottom {
		return fmt.Errorf("%w: margins leave no playable field", ErrInvalidConfig)
	}
	if 2*g.PaddleHalfHeight > g.Top-g.Bottom {
		return fmt.Errorf("%w: paddle is taller than the playable field", ErrInvalidConfig)
	}
	if g.BallHalfSize >= g.LimitX {
		return fmt.Errorf("%w: ball is wider than the playable field", ErrInvalidConfig)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
