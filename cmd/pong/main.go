package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/diegok/arcadepong/internal/app"
	"github.com/diegok/arcadepong/internal/config"
	"github.com/diegok/arcadepong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	// The terminal UI owns stderr while playing
	var logger *zap.Logger
	if cfg.Headless {
		logger = logging.NewStderr(cfg.LogLevel)
	} else {
		logger = logging.NewFile(cfg.LogLevel, cfg.LogFile)
	}
	defer func() { _ = logger.Sync() }()

	application, err := app.NewApp(cfg, logger)
	if err == nil {
		err = application.Run()
	}
	if err != nil {
		logger.Error("pong exited", zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]                    Play in the terminal")
	fmt.Fprintln(os.Stderr, "  pong --headless [options]         Simulate AI against AI and print the score")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <file>     TOML config file")
	fmt.Fprintln(os.Stderr, "  --left <kind>       Left paddle: human or ai (default: ai)")
	fmt.Fprintln(os.Stderr, "  --right <kind>      Right paddle: human or ai (default: ai)")
	fmt.Fprintln(os.Stderr, "  --difficulty <d>    easy, classic, medium, hard or god (default: classic)")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win, 0 plays forever (default: 0)")
	fmt.Fprintln(os.Stderr, "  --sound=false       Mute sound effects")
	fmt.Fprintln(os.Stderr, "  --frames <n>        Frames to simulate when headless (default: 3600)")
	fmt.Fprintln(os.Stderr, "  --log-level <lvl>   debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "  --log-file <file>   Log file for terminal play (default: pong.log)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W/S moves the left paddle, Up/Down the right one")
	fmt.Fprintln(os.Stderr, "  d toggles the debug overlay, Enter starts a rematch, q quits")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong --left human --points 11")
	fmt.Fprintln(os.Stderr, "  pong --left human --right human --difficulty hard")
	fmt.Fprintln(os.Stderr, "  pong --headless --frames 36000 --difficulty god")
}
