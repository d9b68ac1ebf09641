package game

import "github.com/diegok/arcadepong/internal/vector"

// Direction represents paddle movement direction
type Direction int

const (
	DirHold Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "hold"
	}
}

// Side represents which goal a paddle defends
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// EventKind identifies what happened to the ball during a substep
type EventKind int

const (
	EventWall EventKind = iota
	EventPaddle
	EventGoal
)

func (k EventKind) String() string {
	switch k {
	case EventWall:
		return "wall"
	case EventPaddle:
		return "paddle"
	case EventGoal:
		return "goal"
	}
	return "unknown"
}

// Event is emitted by the ball for renderers and sound to consume.
// For EventPaddle Side is the paddle that was hit, for EventGoal it is the
// side that scored; walls leave it unset. RelativeAngle is the ball's angle
// right after the event.
type Event struct {
	Kind          EventKind
	Side          Side
	RelativeAngle float64
	Position      vector.Vector2
}
