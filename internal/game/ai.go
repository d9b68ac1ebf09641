package game

import (
	"math"

	"github.com/diegok/arcadepong/internal/config"
)

// AIController steers a paddle by forecasting where the ball will cross
// its goal line, walls included. While the ball travels away it drifts
// back to the centre.
type AIController struct {
	paddle   *Paddle
	geometry config.Geometry

	predictedY    float64
	hasPrediction bool
}

func NewAIController(paddle *Paddle, g config.Geometry) *AIController {
	return &AIController{paddle: paddle, geometry: g}
}

// Direction picks Up, Down or Hold for this frame
func (ai *AIController) Direction(ball BallView) Direction {
	var target float64

	if ai.movingAway(ball) {
		target = 0
		ai.hasPrediction = false
	} else {
		ai.calculateBounces(ball)
		target = ai.predictedY
	}

	p := ai.paddle
	switch {
	case target-ball.HalfSize < p.CenterY-p.BlockHeight:
		return DirDown
	case target+ball.HalfSize > p.CenterY+p.BlockHeight:
		return DirUp
	}
	return DirHold
}

// Prediction returns the cached crossing point, if any
func (ai *AIController) Prediction() (float64, bool) {
	return ai.predictedY, ai.hasPrediction
}

// Reset drops the cached prediction
func (ai *AIController) Reset() {
	ai.hasPrediction = false
	ai.predictedY = 0
}

func (ai *AIController) movingAway(ball BallView) bool {
	if ai.paddle.Side == SideLeft {
		return ball.Velocity.X > 0
	}
	return ball.Velocity.X < 0
}

// calculateBounces projects the ball to the paddle's X and folds the result
// back between the walls. It runs once per approach; the result is kept
// until the ball turns away.
func (ai *AIController) calculateBounces(ball BallView) {
	if ai.hasPrediction {
		return
	}

	eta := math.Abs(ai.paddle.X-ball.Position.X) / math.Abs(ball.Velocity.X)
	y := ball.Position.Y + ball.Velocity.Y*eta

	ai.predictedY = foldBetween(y, ai.geometry.Bottom, ai.geometry.Top)
	ai.hasPrediction = true
}

// foldBetween mirrors y off low and high until it lies between them. Each
// reflection is a wall bounce; the closed form handles any number of them.
func foldBetween(y, low, high float64) float64 {
	if y >= low && y <= high {
		return y
	}

	span := high - low
	period := 2 * span
	offset := math.Mod(y-low, period)
	if offset < 0 {
		offset += period
	}
	if offset > span {
		offset = period - offset
	}
	return low + offset
}
