package game

import "github.com/diegok/arcadepong/internal/config"

// BallState is the drawable state of the ball
type BallState struct {
	X, Y     float64
	VX, VY   float64
	Speed    float64
	HalfSize float64
}

// PaddleState is the drawable state of a paddle
type PaddleState struct {
	Side       Side
	X, Y       float64
	HalfWidth  float64
	HalfHeight float64
	Human      bool
}

// Snapshot is everything a renderer needs to draw one frame
type Snapshot struct {
	Field   config.Geometry
	Ball    BallState
	Paddles [2]PaddleState
	Scores  [2]int

	// Angle after the most recent wall or paddle bounce, for debug display
	BounceAngle float64
	HasBounce   bool

	// AI forecasts, per side
	Predictions   [2]float64
	HasPrediction [2]bool

	PointsToWin int
	Over        bool
	Winner      Side
}

// Frame is the result of one Step
type Frame struct {
	Events   []Event
	Substeps int
	Snapshot Snapshot
}

// predictor is implemented by controllers that expose a forecast
type predictor interface {
	Prediction() (float64, bool)
}

// Snapshot copies the current state for the renderer
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Field: s.geometry,
		Ball: BallState{
			X:        s.ball.Position.X,
			Y:        s.ball.Position.Y,
			VX:       s.ball.Velocity.X,
			VY:       s.ball.Velocity.Y,
			Speed:    s.ball.Speed,
			HalfSize: s.ball.HalfSize,
		},
		BounceAngle: s.bounceAngle,
		HasBounce:   s.hasBounce,
		PointsToWin: s.cfg.PointsToWin,
		Over:        s.over,
		Winner:      s.winner,
	}

	for i, p := range s.players {
		_, human := p.Control.(*HumanInput)
		snap.Paddles[i] = PaddleState{
			Side:       p.Side,
			X:          p.Paddle.X,
			Y:          p.Paddle.CenterY,
			HalfWidth:  p.Paddle.HalfWidth,
			HalfHeight: p.Paddle.HalfHeight,
			Human:      human,
		}
		snap.Scores[i] = p.Score.Hits()
		if pr, ok := p.Control.(predictor); ok {
			snap.Predictions[i], snap.HasPrediction[i] = pr.Prediction()
		}
	}
	return snap
}
