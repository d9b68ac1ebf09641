package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestVector2_Length(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4).Length())
	assert.Equal(t, 0.0, Vector2{}.Length())
}

func TestVector2_ScaleAndAdd(t *testing.T) {
	v := New(-100, 20).Scale(0.005)
	assert.InDelta(t, -0.5, v.X, epsilon)
	assert.InDelta(t, 0.1, v.Y, epsilon)

	sum := New(1, 2).Add(New(3, -5))
	assert.Equal(t, New(4, -3), sum)
}

func TestVector2_ValueSemantics(t *testing.T) {
	v := New(1, 1)
	_ = v.Scale(10)
	_ = v.Add(New(5, 5))
	_ = v.Rotate(90)
	assert.Equal(t, New(1, 1), v, "operations must not mutate the receiver")
}

func TestVector2_Normalize(t *testing.T) {
	n := New(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, epsilon)
	assert.InDelta(t, 0.8, n.Y, epsilon)
	assert.InDelta(t, 1.0, n.Length(), epsilon)
}

func TestVector2_NormalizeZero(t *testing.T) {
	n := Vector2{}.Normalize()
	assert.True(t, n.IsZero())
	assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y))
}

func TestVector2_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vector2
		angle float64
		want  Vector2
	}{
		{"quarter turn", New(1, 0), 90, New(0, 1)},
		{"half turn", New(1, 0), 180, New(-1, 0)},
		{"negative quarter", New(1, 0), -90, New(0, -1)},
		{"identity", New(2, 3), 0, New(2, 3)},
		{"full turn", New(2, 3), 360, New(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.angle)
			assert.InDelta(t, tt.want.X, got.X, epsilon)
			assert.InDelta(t, tt.want.Y, got.Y, epsilon)
		})
	}
}

func TestVector2_RotatePreservesLength(t *testing.T) {
	v := New(45, -12)
	for angle := -180.0; angle <= 180; angle += 15 {
		assert.InDelta(t, v.Length(), v.Rotate(angle).Length(), 1e-9)
	}
}

func TestVector2_AngleDegrees(t *testing.T) {
	assert.InDelta(t, 0, New(1, 0).AngleDegrees(), epsilon)
	assert.InDelta(t, 90, New(0, 1).AngleDegrees(), epsilon)
	assert.InDelta(t, 180, New(-1, 0).AngleDegrees(), epsilon)
	assert.InDelta(t, -90, New(0, -1).AngleDegrees(), epsilon)
	assert.InDelta(t, 45, New(1, 1).AngleDegrees(), epsilon)
}

func TestVector2_RelativeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   Vector2
		want float64
	}{
		{"rightward", New(1, 0), 0},
		{"leftward", New(-1, 0), 0},
		{"up right", New(1, 1), 45},
		{"up left", New(-1, 1), 45},
		{"down right", New(1, -1), -45},
		{"down left", New(-1, -1), -45},
		{"straight up", New(0, 1), 90},
		{"straight down", New(0, -1), -90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.in.RelativeAngle(), 1e-9)
		})
	}
}

func TestVector2_RelativeAngleRange(t *testing.T) {
	for deg := -179.0; deg <= 180; deg += 7 {
		rel := New(1, 0).Rotate(deg).RelativeAngle()
		assert.GreaterOrEqual(t, rel, -90.0)
		assert.LessOrEqual(t, rel, 90.0)
	}
}

func TestVector2_IsBeyondBounceAngle(t *testing.T) {
	const maxAngle = 40.0

	tests := []struct {
		angle float64
		want  bool
	}{
		{0, false},
		{30, false},
		{41, true},
		{90, true},
		{139, true},
		{180, false},
		{-139, true},
		{-90, true},
		{-41, true},
	}

	for _, tt := range tests {
		v := New(10, 0).Rotate(tt.angle)
		assert.Equal(t, tt.want, v.IsBeyondBounceAngle(maxAngle), "angle %v", tt.angle)
	}
}

func TestVector2_BounceAngleMatchesRelativeAngle(t *testing.T) {
	const maxAngle = 40.0
	for deg := -179.5; deg < 180; deg += 0.5 {
		v := New(1, 0).Rotate(deg)
		beyond := v.IsBeyondBounceAngle(maxAngle)
		rel := math.Abs(v.RelativeAngle())
		if math.Abs(rel-maxAngle) < 1e-6 {
			continue
		}
		assert.Equal(t, rel > maxAngle, beyond, "angle %v relative %v", deg, rel)
	}
}
