package config

import (
	"flag"
	"fmt"
)

// ParseArgs parses command line arguments and returns a validated Config.
// A --config file is loaded first; explicit flags override it.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)

	defaults := Default()
	path := fs.String("config", "", "TOML config file")
	left := fs.String("left", defaults.Left, "left paddle controller (human|ai)")
	right := fs.String("right", defaults.Right, "right paddle controller (human|ai)")
	difficulty := fs.String("difficulty", defaults.Difficulty, "AI difficulty (easy|classic|medium|hard|god)")
	points := fs.Int("points", defaults.PointsToWin, "points to win (0 plays forever)")
	sound := fs.Bool("sound", defaults.Sound, "play sound effects")
	headless := fs.Bool("headless", defaults.Headless, "run without a terminal UI")
	frames := fs.Int("frames", defaults.Frames, "frames to simulate in headless mode")
	logLevel := fs.String("log-level", defaults.LogLevel, "log level (debug|info|warn|error)")
	logFile := fs.String("log-file", defaults.LogFile, "log file used in terminal mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["left"] {
		cfg.Left = *left
	}
	if set["right"] {
		cfg.Right = *right
	}
	if set["difficulty"] {
		if err := cfg.ApplyDifficulty(*difficulty); err != nil {
			return nil, err
		}
	}
	if set["points"] {
		cfg.PointsToWin = *points
	}
	if set["sound"] {
		cfg.Sound = *sound
	}
	if set["headless"] {
		cfg.Headless = *headless
	}
	if set["frames"] {
		cfg.Frames = *frames
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if set["log-file"] {
		cfg.LogFile = *logFile
	}

	if cfg.Headless && (cfg.Left == ControllerHuman || cfg.Right == ControllerHuman) {
		return nil, fmt.Errorf("%w: headless mode needs two AI paddles", ErrInvalidConfig)
	}
	if cfg.Headless && cfg.Frames < 1 {
		return nil, fmt.Errorf("%w: frames must be at least 1, got %d", ErrInvalidConfig, cfg.Frames)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
