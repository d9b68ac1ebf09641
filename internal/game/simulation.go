package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/diegok/arcadepong/internal/config"
)

// Simulation owns one match: the ball, both players and the substep clock.
// It is not safe for concurrent use; drive it from a single loop.
type Simulation struct {
	cfg      config.Config
	geometry config.Geometry
	ball     *Ball
	players  [2]*Player
	logger   *zap.Logger

	remainder   float64 // scaled time not yet consumed by a substep
	bounceAngle float64
	hasBounce   bool
	over        bool
	winner      Side
}

// Option customises a Simulation
type Option func(*Simulation)

// WithLogger sets the logger used for match events
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// NewSimulation validates cfg and builds a match ready to play. An invalid
// configuration is refused outright.
func NewSimulation(cfg config.Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to start simulation: %w", err)
	}

	g := cfg.Geometry()
	s := &Simulation{
		cfg:      cfg,
		geometry: g,
		ball:     NewBall(cfg, g),
		logger:   zap.NewNop(),
	}
	s.players[SideLeft] = s.newPlayer(SideLeft, cfg.Left)
	s.players[SideRight] = s.newPlayer(SideRight, cfg.Right)

	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("simulation ready",
		zap.String("left", cfg.Left),
		zap.String("right", cfg.Right),
		zap.Float64("limit_x", g.LimitX),
		zap.Float64("top", g.Top),
		zap.Float64("bottom", g.Bottom),
		zap.Float64("quantum", cfg.Quantum),
		zap.Int("points_to_win", cfg.PointsToWin),
	)
	return s, nil
}

func (s *Simulation) newPlayer(side Side, kind string) *Player {
	speed := s.cfg.AIPaddleSpeed
	if kind == config.ControllerHuman {
		speed = s.cfg.HumanPaddleSpeed
	}

	paddle := NewPaddle(side, speed, s.geometry)
	var control DirectionProvider
	if kind == config.ControllerHuman {
		control = NewHumanInput(s.cfg.HumanHoldFrames)
	} else {
		control = NewAIController(paddle, s.geometry)
	}

	return &Player{
		Side:    side,
		Paddle:  paddle,
		Score:   NewScoreboard(int(side) + 1),
		Control: control,
	}
}

// Step advances the match by one frame of elapsed wall-clock time
func (s *Simulation) Step(elapsed time.Duration) Frame {
	return s.StepDelta(elapsed.Seconds() * s.cfg.TimeScale)
}

// StepDelta advances the match by an already time-scaled delta. Directions
// are resolved first, then paddles move by the whole delta, then the ball
// runs as many fixed substeps as fit. Leftover time carries to the next
// frame, so identical delta sequences replay identically.
func (s *Simulation) StepDelta(delta float64) Frame {
	if s.over {
		return Frame{Snapshot: s.Snapshot()}
	}

	if delta < 0 {
		delta = 0
	}
	if delta > s.cfg.MaxFrameDelta {
		delta = s.cfg.MaxFrameDelta
	}

	view := s.ball.View()
	var dirs [2]Direction
	for i, p := range s.players {
		dirs[i] = p.Control.Direction(view)
	}
	for i, p := range s.players {
		p.Paddle.Move(dirs[i], delta)
	}

	s.remainder += delta
	substeps := int(s.remainder / s.cfg.Quantum)
	s.remainder -= float64(substeps) * s.cfg.Quantum
	if s.remainder < 0 {
		s.remainder = 0
	}

	left, right := s.players[SideLeft], s.players[SideRight]
	var events []Event
	done := 0
	for done < substeps && !s.over {
		start := len(events)
		events = s.ball.Advance(left, right, s.cfg.Quantum, events)
		done++
		for _, ev := range events[start:] {
			s.record(ev)
		}
	}
	if s.over {
		s.remainder = 0
	}

	return Frame{Events: events, Substeps: done, Snapshot: s.Snapshot()}
}

func (s *Simulation) record(ev Event) {
	switch ev.Kind {
	case EventWall, EventPaddle:
		s.bounceAngle = ev.RelativeAngle
		s.hasBounce = true
	case EventGoal:
		s.hasBounce = false
		left, right := s.players[SideLeft].Score.Hits(), s.players[SideRight].Score.Hits()
		s.logger.Info("goal",
			zap.Stringer("scorer", ev.Side),
			zap.Int("left", left),
			zap.Int("right", right),
		)

		if s.cfg.PointsToWin > 0 && s.players[ev.Side].Score.Hits() >= s.cfg.PointsToWin {
			s.over = true
			s.winner = ev.Side
			s.logger.Info("match over",
				zap.Stringer("winner", ev.Side),
				zap.Int("left", left),
				zap.Int("right", right),
			)
		}
	}
}

// Reset starts a new match with the same configuration
func (s *Simulation) Reset() {
	for _, p := range s.players {
		p.Score.Reset()
		p.Paddle.Reset()
		if r, ok := p.Control.(interface{ Reset() }); ok {
			r.Reset()
		}
	}
	s.ball.Relocate(-1)
	s.remainder = 0
	s.hasBounce = false
	s.bounceAngle = 0
	s.over = false
	s.winner = SideLeft
	s.logger.Info("match reset")
}

// Player returns the player defending side
func (s *Simulation) Player(side Side) *Player {
	return s.players[side]
}

// Ball returns the ball in play
func (s *Simulation) Ball() *Ball {
	return s.ball
}

// Human returns the keyboard controller of side, if a human plays it
func (s *Simulation) Human(side Side) (*HumanInput, bool) {
	h, ok := s.players[side].Control.(*HumanInput)
	return h, ok
}

// Over reports whether a player has reached PointsToWin
func (s *Simulation) Over() bool {
	return s.over
}

// Winner returns the side that won; only meaningful once Over is true
func (s *Simulation) Winner() Side {
	return s.winner
}

// Config returns the configuration the match was built with
func (s *Simulation) Config() config.Config {
	return s.cfg
}
