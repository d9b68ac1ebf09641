package game

import (
	"math"

	"github.com/diegok/arcadepong/internal/config"
	"github.com/diegok/arcadepong/internal/vector"
)

// Ball carries the position and velocity of the single ball in play.
// Velocity always has magnitude Speed.
type Ball struct {
	Position vector.Vector2
	Velocity vector.Vector2
	Speed    float64

	BaseSpeed      float64
	SpeedIncrement float64
	MaxBounceAngle float64 // Degrees from horizontal
	DegreesPerUnit float64
	ServeSeedY     float64
	HalfSize       float64

	geometry config.Geometry
}

// BallView is a read-only copy of the ball handed to controllers
type BallView struct {
	Position vector.Vector2
	Velocity vector.Vector2
	HalfSize float64
}

// NewBall creates a ball served toward the left paddle
func NewBall(cfg config.Config, g config.Geometry) *Ball {
	b := &Ball{
		BaseSpeed:      cfg.BallBaseSpeed,
		SpeedIncrement: cfg.BallSpeedIncrement,
		MaxBounceAngle: cfg.MaxBounceAngle,
		DegreesPerUnit: cfg.DegreesPerUnit,
		ServeSeedY:     cfg.ServeSeedY,
		HalfSize:       g.BallHalfSize,
		geometry:       g,
	}
	b.Relocate(-1)
	return b
}

// Relocate puts the ball back at the centre at base speed, heading left for
// direction < 0 and right otherwise. The vertical seed keeps the serve off
// the pure horizontal.
func (b *Ball) Relocate(direction int) {
	dx := 1.0
	if direction < 0 {
		dx = -1
	}

	b.Speed = b.BaseSpeed
	b.Position = vector.Vector2{}
	b.Velocity = vector.New(dx, b.ServeSeedY).Normalize().Scale(b.BaseSpeed)
}

// Advance integrates one substep of length dt. Goals update the scorer's
// scoreboard and re-serve the ball; wall and paddle hits reflect it.
// A wall only reflects a ball still heading out of the field.
// Every event is appended to events and the extended slice is returned.
func (b *Ball) Advance(left, right *Player, dt float64, events []Event) []Event {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	// Goals
	if b.Position.X < -b.geometry.LimitX {
		pos := b.Position
		right.Score.Update()
		b.Relocate(1)
		return append(events, b.event(EventGoal, SideRight, pos))
	}
	if b.Position.X > b.geometry.LimitX {
		pos := b.Position
		left.Score.Update()
		b.Relocate(-1)
		return append(events, b.event(EventGoal, SideLeft, pos))
	}

	// Walls. Only a ball still heading outward is reflected, so an overshoot
	// is left to unwind on the following substeps.
	if (b.Position.Y > b.geometry.Top && b.Velocity.Y > 0) ||
		(b.Position.Y < b.geometry.Bottom && b.Velocity.Y < 0) {
		b.Velocity = vector.New(b.Velocity.X, -b.Velocity.Y)
		events = append(events, b.event(EventWall, SideLeft, b.Position))
	}

	// Only the paddle the ball is travelling toward can be hit
	if b.Velocity.X < 0 && b.Collides(left.Paddle) {
		b.bounce(b.Position.Y - left.Paddle.CenterY)
		events = append(events, b.event(EventPaddle, SideLeft, b.Position))
	} else if b.Velocity.X > 0 && b.Collides(right.Paddle) {
		b.bounce(right.Paddle.CenterY - b.Position.Y)
		events = append(events, b.event(EventPaddle, SideRight, b.Position))
	}

	return events
}

// bounce sends the ball back with extra speed, steered by how far from the
// paddle centre it struck. A steer that would leave the ball steeper than
// MaxBounceAngle, or turn it back toward the paddle, is discarded.
func (b *Ball) bounce(offset float64) {
	b.Velocity = vector.New(-b.Velocity.X, b.Velocity.Y)
	b.increaseSpeed()

	candidate := b.Velocity.Rotate(offset * b.DegreesPerUnit)
	if candidate.IsBeyondBounceAngle(b.MaxBounceAngle) {
		return
	}
	if math.Signbit(candidate.X) != math.Signbit(b.Velocity.X) {
		return
	}
	b.Velocity = candidate
}

func (b *Ball) increaseSpeed() {
	b.Speed += b.SpeedIncrement
	b.Velocity = b.Velocity.Normalize().Scale(b.Speed)
}

// Collides is an axis-aligned overlap test between the ball square and the
// paddle rectangle. Touching edges count as a hit.
func (b *Ball) Collides(p *Paddle) bool {
	switch {
	case b.Position.X+b.HalfSize < p.X-p.HalfWidth:
		return false
	case b.Position.X-b.HalfSize > p.X+p.HalfWidth:
		return false
	case b.Position.Y+b.HalfSize < p.Bottom():
		return false
	case b.Position.Y-b.HalfSize > p.Top():
		return false
	}
	return true
}

// RelativeAngle is the current deviation from horizontal, in degrees
func (b *Ball) RelativeAngle() float64 {
	return b.Velocity.RelativeAngle()
}

// View returns a snapshot for controllers
func (b *Ball) View() BallView {
	return BallView{Position: b.Position, Velocity: b.Velocity, HalfSize: b.HalfSize}
}

func (b *Ball) event(kind EventKind, side Side, pos vector.Vector2) Event {
	return Event{Kind: kind, Side: side, RelativeAngle: b.RelativeAngle(), Position: pos}
}
