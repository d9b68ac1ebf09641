package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diegok/arcadepong/internal/config"
)

const tolerance = 1e-9

// newTestPlayers builds two idle human-controlled players on the default field
func newTestPlayers(t *testing.T, cfg config.Config) (*Player, *Player) {
	t.Helper()
	require.NoError(t, cfg.Validate())

	g := cfg.Geometry()
	left := &Player{
		Side:    SideLeft,
		Paddle:  NewPaddle(SideLeft, cfg.HumanPaddleSpeed, g),
		Score:   NewScoreboard(1),
		Control: NewHumanInput(cfg.HumanHoldFrames),
	}
	right := &Player{
		Side:    SideRight,
		Paddle:  NewPaddle(SideRight, cfg.HumanPaddleSpeed, g),
		Score:   NewScoreboard(2),
		Control: NewHumanInput(cfg.HumanHoldFrames),
	}
	return left, right
}

func humanConfig() config.Config {
	cfg := config.Default()
	cfg.Left = config.ControllerHuman
	cfg.Right = config.ControllerHuman
	return cfg
}

func newTestSimulation(t *testing.T, cfg config.Config) *Simulation {
	t.Helper()
	sim, err := NewSimulation(cfg)
	require.NoError(t, err)
	return sim
}
