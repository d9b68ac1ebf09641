package config

// Geometry is the playable field derived from a Config. The origin is the
// field centre, Y grows upward, paddles sit on the goal lines at ±LimitX.
type Geometry struct {
	LimitX           float64
	Top              float64
	Bottom           float64
	PaddleHalfWidth  float64
	PaddleHalfHeight float64
	PaddleBlock      float64
	BallHalfSize     float64
}

// Geometry computes the field limits once; callers inject the result
func (c Config) Geometry() Geometry {
	return Geometry{
		LimitX:           c.FieldWidth/2 - c.MarginX,
		Top:              c.FieldHeight/2 - c.MarginY,
		Bottom:           -c.FieldHeight/2 + c.MarginY,
		PaddleHalfWidth:  c.PaddleBlockSize / 2,
		PaddleHalfHeight: c.PaddleBlockSize * float64(c.PaddleBlocks) / 2,
		PaddleBlock:      c.PaddleBlockSize,
		BallHalfSize:     c.BallSize / 2,
	}
}

// Height is the vertical extent between the walls
func (g Geometry) Height() float64 {
	return g.Top - g.Bottom
}

// Width is the horizontal extent between the goal lines
func (g Geometry) Width() float64 {
	return 2 * g.LimitX
}
