package app

import (
	"fmt"
	"time"

	"github.com/diegok/arcadepong/internal/game"
)

// Result summarises a headless match
type Result struct {
	Frames     int
	Scores     [2]int
	PaddleHits int
	WallHits   int
	Over       bool
	Winner     game.Side
}

func (r Result) String() string {
	s := fmt.Sprintf("left %d - %d right after %d frames (%d paddle hits, %d wall bounces)",
		r.Scores[game.SideLeft], r.Scores[game.SideRight], r.Frames, r.PaddleHits, r.WallHits)
	if r.Over {
		s += fmt.Sprintf(", %s wins", r.Winner)
	}
	return s
}

// Play runs sim for up to frames fixed-length frames without a terminal,
// stopping early when the match is decided. The same configuration always
// produces the same Result.
func Play(sim *game.Simulation, frames int, frame time.Duration) Result {
	var res Result
	for res.Frames < frames && !sim.Over() {
		f := sim.Step(frame)
		res.Frames++
		for _, ev := range f.Events {
			switch ev.Kind {
			case game.EventPaddle:
				res.PaddleHits++
			case game.EventWall:
				res.WallHits++
			}
		}
	}

	snap := sim.Snapshot()
	res.Scores = snap.Scores
	res.Over = snap.Over
	res.Winner = snap.Winner
	return res
}
