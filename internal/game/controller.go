package game

// DirectionProvider decides where a paddle moves this frame. It is asked
// exactly once per frame, before any paddle moves.
type DirectionProvider interface {
	Direction(ball BallView) Direction
}

// Player ties a paddle to its scoreboard and whoever steers it
type Player struct {
	Side    Side
	Paddle  *Paddle
	Score   *Scoreboard
	Control DirectionProvider
}

// HumanInput turns key presses into paddle directions. Terminals report
// presses but not releases, so a press keeps the paddle moving for a few
// frames and then it holds.
type HumanInput struct {
	holdFrames int
	dir        Direction
	ticks      int
}

func NewHumanInput(holdFrames int) *HumanInput {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &HumanInput{holdFrames: holdFrames}
}

// Press starts (or keeps) moving in dir; DirHold stops immediately
func (h *HumanInput) Press(dir Direction) {
	if dir == DirHold {
		h.Release()
		return
	}
	h.dir = dir
	h.ticks = h.holdFrames
}

// Release stops the paddle
func (h *HumanInput) Release() {
	h.dir = DirHold
	h.ticks = 0
}

// Direction returns the pending direction and counts down the hold
func (h *HumanInput) Direction(BallView) Direction {
	if h.ticks == 0 {
		return DirHold
	}
	h.ticks--
	dir := h.dir
	if h.ticks == 0 {
		h.dir = DirHold
	}
	return dir
}

// Reset forgets any pending press
func (h *HumanInput) Reset() {
	h.Release()
}
