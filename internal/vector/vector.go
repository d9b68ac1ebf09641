package vector

import "math"

// Vector2 is a 2D value used for both positions and velocities.
// Every method returns a new value; the receiver is never modified.
type Vector2 struct {
	X, Y float64
}

// New returns the vector (x, y)
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Scale multiplies both components by factor
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Add returns the component sum of v and o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Normalize returns the unit vector, or the zero vector when v has no length
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return v.Scale(1 / length)
}

// Rotate rotates counter-clockwise by angle degrees
func (v Vector2) Rotate(angle float64) Vector2 {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// AngleDegrees returns atan2(y, x) in degrees, in (-180, 180]
func (v Vector2) AngleDegrees() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// RelativeAngle folds the travel angle into [-90, 90], the deviation from
// the horizontal axis regardless of whether the vector points left or right.
func (v Vector2) RelativeAngle() float64 {
	angle := v.AngleDegrees()

	if angle >= 180 {
		angle -= 180
	}
	if angle > 90 {
		angle = 180 - angle
	}
	if angle <= -180 {
		angle += 180
	}
	if angle < -90 {
		angle = -180 - angle
	}
	return angle
}

// IsBeyondBounceAngle reports whether the vector is steeper than maxAngle
// degrees from horizontal, i.e. its 0-360 angle lies strictly inside the
// band around 90° or 270° that a capped bounce must never enter.
func (v Vector2) IsBeyondBounceAngle(maxAngle float64) bool {
	angle := v.AngleDegrees()
	if angle < 0 {
		angle += 360
	}

	switch {
	case angle > maxAngle && angle < 180-maxAngle:
		return true
	case angle > 180+maxAngle && angle < 360-maxAngle:
		return true
	}
	return false
}

// IsZero reports whether both components are zero
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
