package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/diegok/arcadepong/internal/audio"
	"github.com/diegok/arcadepong/internal/config"
	"github.com/diegok/arcadepong/internal/game"
	"github.com/diegok/arcadepong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	sim    *game.Simulation

	screen   *ui.Screen
	renderer *ui.Renderer
	sound    *audio.Player

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp builds the simulation for cfg. Nothing touches the terminal until
// Run is called.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	sim, err := game.NewSimulation(*cfg, game.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		sim:    sim,
		sound:  audio.NewPlayer(),
		quit:   make(chan struct{}),
	}, nil
}

// Run is the main entry point for the application.
// It plays headless or in the terminal depending on the configuration.
func (a *App) Run() error {
	if a.cfg.Headless {
		res := Play(a.sim, a.cfg.Frames, a.cfg.FrameDuration())
		a.logger.Info("headless match finished",
			zap.Int("frames", res.Frames),
			zap.Int("left", res.Scores[game.SideLeft]),
			zap.Int("right", res.Scores[game.SideRight]),
			zap.Int("paddle_hits", res.PaddleHits),
			zap.Int("wall_hits", res.WallHits),
			zap.Bool("over", res.Over),
		)
		fmt.Println(res)
		return nil
	}

	if a.cfg.Sound {
		if err := a.sound.Init(); err != nil {
			// The game works without sound
			a.logger.Warn("audio unavailable", zap.Error(err))
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()
	return runErr
}

// mainLoop is the main event loop that handles all input and state updates.
// The simulation is only ever touched from this goroutine.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.FrameDuration())
	defer ticker.Stop()

	a.logger.Info("match started",
		zap.String("left", a.cfg.Left),
		zap.String("right", a.cfg.Right),
		zap.String("difficulty", a.cfg.Difficulty),
	)

	last := time.Now()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case now := <-ticker.C:
			frame := a.sim.Step(now.Sub(last))
			last = now
			a.sound.Play(frame.Events)
			a.renderer.RenderGame(frame.Snapshot)
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.RenderGame(a.sim.Snapshot())
	}

	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	key, r := ev.Key(), ev.Rune()

	switch {
	case ui.IsQuitKey(key, r):
		return true

	case ui.IsDebugKey(key, r):
		a.renderer.ToggleDebug()

	case ui.IsStartKey(key):
		if a.sim.Over() {
			a.sim.Reset()
		}

	default:
		side, dir, ok := ui.KeyToDirection(key, r)
		if !ok {
			return false
		}
		// Keys for an AI paddle are ignored
		if h, human := a.sim.Human(side); human {
			h.Press(dir)
		}
	}
	return false
}

func (a *App) stop() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.sound.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)

	snap := a.sim.Snapshot()
	a.logger.Info("match closed",
		zap.Int("left", snap.Scores[game.SideLeft]),
		zap.Int("right", snap.Scores[game.SideRight]),
	)
}
