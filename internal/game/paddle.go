package game

import (
	"math"

	"github.com/diegok/arcadepong/internal/config"
)

// Paddle is a vertical bar fixed on one goal line
type Paddle struct {
	Side        Side
	X           float64 // fixed
	CenterY     float64
	HalfWidth   float64
	HalfHeight  float64
	BlockHeight float64
	Speed       float64

	top    float64
	bottom float64
}

// NewPaddle places a paddle at the centre of its goal line
func NewPaddle(side Side, speed float64, g config.Geometry) *Paddle {
	x := -g.LimitX
	if side == SideRight {
		x = g.LimitX
	}

	return &Paddle{
		Side:        side,
		X:           x,
		HalfWidth:   g.PaddleHalfWidth,
		HalfHeight:  g.PaddleHalfHeight,
		BlockHeight: g.PaddleBlock,
		Speed:       speed,
		top:         g.Top,
		bottom:      g.Bottom,
	}
}

// Move shifts the paddle by round(Speed*scaledTime). Up is only stopped by
// the top wall and Down only by the bottom wall; a paddle that reaches a
// wall stops flush against it.
func (p *Paddle) Move(dir Direction, scaledTime float64) {
	distance := math.Round(p.Speed * scaledTime)

	switch dir {
	case DirUp:
		if p.Top() >= p.top {
			return
		}
		p.CenterY += distance
		if p.Top() > p.top {
			p.CenterY = p.top - p.HalfHeight
		}
	case DirDown:
		if p.Bottom() <= p.bottom {
			return
		}
		p.CenterY -= distance
		if p.Bottom() < p.bottom {
			p.CenterY = p.bottom + p.HalfHeight
		}
	}
}

// Top returns the upper edge
func (p *Paddle) Top() float64 {
	return p.CenterY + p.HalfHeight
}

// Bottom returns the lower edge
func (p *Paddle) Bottom() float64 {
	return p.CenterY - p.HalfHeight
}

// ContainsY reports whether y lies within the paddle's vertical extent
func (p *Paddle) ContainsY(y float64) bool {
	return y >= p.Bottom() && y <= p.Top()
}

// Reset recentres the paddle for a new match
func (p *Paddle) Reset() {
	p.CenterY = 0
}
