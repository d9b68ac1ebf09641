package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 480.0, cfg.HumanPaddleSpeed)
	assert.Equal(t, 32.0, cfg.AIPaddleSpeed)
	assert.Equal(t, 50.0, cfg.BallBaseSpeed)
	assert.Equal(t, 0.005, cfg.Quantum)
	assert.Equal(t, 5.0, cfg.TimeScale)
}

func TestDefault_Geometry(t *testing.T) {
	g := Default().Geometry()

	assert.Equal(t, 370.0, g.LimitX)
	assert.Equal(t, 235.0, g.Top)
	assert.Equal(t, -235.0, g.Bottom)
	assert.Equal(t, 10.0, g.PaddleHalfWidth)
	assert.Equal(t, 30.0, g.PaddleHalfHeight)
	assert.Equal(t, 20.0, g.PaddleBlock)
	assert.Equal(t, 10.0, g.BallHalfSize)
	assert.Equal(t, 470.0, g.Height())
	assert.Equal(t, 740.0, g.Width())
}

func TestFrameDuration(t *testing.T) {
	cfg := Default()
	cfg.FrameRate = 50
	assert.Equal(t, 20*time.Millisecond, cfg.FrameDuration())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.FieldWidth = 0 }},
		{"negative height", func(c *Config) { c.FieldHeight = -10 }},
		{"zero ball speed", func(c *Config) { c.BallBaseSpeed = 0 }},
		{"negative increment", func(c *Config) { c.BallSpeedIncrement = -5 }},
		{"zero increment", func(c *Config) { c.BallSpeedIncrement = 0 }},
		{"zero human speed", func(c *Config) { c.HumanPaddleSpeed = 0 }},
		{"zero ai speed", func(c *Config) { c.AIPaddleSpeed = 0 }},
		{"zero quantum", func(c *Config) { c.Quantum = 0 }},
		{"zero time scale", func(c *Config) { c.TimeScale = 0 }},
		{"zero serve seed", func(c *Config) { c.ServeSeedY = 0 }},
		{"flat bounce cap", func(c *Config) { c.MaxBounceAngle = 0 }},
		{"vertical bounce cap", func(c *Config) { c.MaxBounceAngle = 90 }},
		{"serve steeper than cap", func(c *Config) { c.ServeSeedY = 1 }},
		{"no paddle blocks", func(c *Config) { c.PaddleBlocks = 0 }},
		{"margins eat field", func(c *Config) { c.MarginY = 300 }},
		{"negative margin", func(c *Config) { c.MarginX = -1 }},
		{"paddle taller than field", func(c *Config) { c.PaddleBlocks = 40 }},
		{"unknown controller", func(c *Config) { c.Left = "robot" }},
		{"negative points", func(c *Config) { c.PointsToWin = -1 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"nan margin x", func(c *Config) { c.MarginX = math.NaN() }},
		{"nan margin y", func(c *Config) { c.MarginY = math.NaN() }},
		{"infinite margin", func(c *Config) { c.MarginY = math.Inf(1) }},
		{"nan bounce cap", func(c *Config) { c.MaxBounceAngle = math.NaN() }},
		{"infinite bounce cap", func(c *Config) { c.MaxBounceAngle = math.Inf(-1) }},
		{"nan ball speed", func(c *Config) { c.BallBaseSpeed = math.NaN() }},
		{"infinite quantum", func(c *Config) { c.Quantum = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestApplyDifficulty(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyDifficulty("god"))
	assert.Equal(t, 320.0, cfg.AIPaddleSpeed)
	assert.Equal(t, "god", cfg.Difficulty)

	err := cfg.ApplyDifficulty("impossible")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
field_width = 1000
points_to_win = 7
left = "human"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, cfg.FieldWidth)
	assert.Equal(t, 7, cfg.PointsToWin)
	assert.Equal(t, ControllerHuman, cfg.Left)
	assert.Equal(t, Default().FieldHeight, cfg.FieldHeight)
	assert.InDelta(t, 40.0, cfg.AIPaddleSpeed, 1e-9, "classic preset follows the wider field")
}

func TestLoad_DifficultyPreset(t *testing.T) {
	path := writeConfig(t, `difficulty = "hard"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800*0.32, cfg.AIPaddleSpeed)
}

func TestLoad_ExplicitSpeedWinsOverDifficulty(t *testing.T) {
	path := writeConfig(t, `
difficulty = "hard"
ai_paddle_speed = 99
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 99.0, cfg.AIPaddleSpeed)
}

func TestLoad_RejectsNaN(t *testing.T) {
	for _, key := range []string{"margin_x", "margin_y", "max_bounce_angle"} {
		t.Run(key, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, key+" = nan"))
			require.NoError(t, err)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseArgs_RejectsNaNFile(t *testing.T) {
	path := writeConfig(t, "max_bounce_angle = nan")

	_, err := ParseArgs([]string{"--config", path})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, `ball_colour = "red"`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, ControllerAI, cfg.Left)
	assert.Equal(t, ControllerAI, cfg.Right)
	assert.Equal(t, 0, cfg.PointsToWin)
	assert.False(t, cfg.Headless)
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--left", "human", "--points", "11", "--difficulty", "easy", "--sound=false", "--log-level", "debug"}
	cfg, err := ParseArgs(args)
	require.NoError(t, err)

	assert.Equal(t, ControllerHuman, cfg.Left)
	assert.Equal(t, ControllerAI, cfg.Right)
	assert.Equal(t, 11, cfg.PointsToWin)
	assert.Equal(t, 800*0.03, cfg.AIPaddleSpeed)
	assert.False(t, cfg.Sound)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseArgs_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
points_to_win = 3
right = "human"
`)

	cfg, err := ParseArgs([]string{"--config", path, "--points", "9"})
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.PointsToWin)
	assert.Equal(t, ControllerHuman, cfg.Right)
}

func TestParseArgs_Headless(t *testing.T) {
	cfg, err := ParseArgs([]string{"--headless", "--frames", "120"})
	require.NoError(t, err)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 120, cfg.Frames)
}

func TestParseArgs_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"headless with human", []string{"--headless", "--left", "human"}},
		{"headless without frames", []string{"--headless", "--frames", "0"}},
		{"bad controller", []string{"--right", "cpu"}},
		{"bad difficulty", []string{"--difficulty", "nightmare"}},
		{"negative points", []string{"--points", "-2"}},
		{"unknown flag", []string{"--server"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			assert.Error(t, err)
		})
	}
}
