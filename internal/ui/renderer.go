package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/arcadepong/internal/config"
	"github.com/diegok/arcadepong/internal/game"
)

const (
	BallChar       = '\u2B24' // ⬤
	PaddleChar     = '\u2588' // █
	PredictionChar = '+'
)

// Renderer draws simulation snapshots onto a terminal screen
type Renderer struct {
	screen *Screen
	debug  bool
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// ToggleDebug switches the bounce angle and prediction overlay
func (r *Renderer) ToggleDebug() {
	r.debug = !r.debug
}

func (r *Renderer) Debug() bool {
	return r.debug
}

// viewport maps field coordinates (origin at the centre, Y up) to terminal
// cells. Row 0 holds the scoreboard and the last row the status bar.
type viewport struct {
	field  config.Geometry
	width  int
	height int
}

func newViewport(g config.Geometry, w, h int) viewport {
	return viewport{field: g, width: w, height: h}
}

func (v viewport) col(x float64) int {
	halfW := v.field.LimitX + v.field.PaddleHalfWidth
	c := int(math.Round((x + halfW) / (2 * halfW) * float64(v.width-1)))
	return clamp(c, 0, v.width-1)
}

func (v viewport) row(y float64) int {
	rows := v.height - 2
	span := v.field.Top - v.field.Bottom
	rw := 1 + int(math.Round((v.field.Top-y)/span*float64(rows-1)))
	return clamp(rw, 1, v.height-2)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// RenderGame displays one frame of the match
func (r *Renderer) RenderGame(snap game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	if screenW < 20 || screenH < 8 {
		r.screen.DrawText(0, 0, "terminal too small", tcell.StyleDefault.Foreground(tcell.ColorRed))
		r.screen.Show()
		return
	}
	vp := newViewport(snap.Field, screenW, screenH)

	// Court
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	centerX := vp.col(0)
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	r.screen.DrawColumn(centerX, 1, screenH-2, 2, lineStyle, '|')

	r.renderScoreboard(snap, screenW)

	for i, paddle := range snap.Paddles {
		style := SideStyle(i)
		top, bottom := vp.row(paddle.Y+paddle.HalfHeight), vp.row(paddle.Y-paddle.HalfHeight)
		r.screen.DrawColumn(vp.col(paddle.X), top, bottom, 1, style, PaddleChar)
	}

	if r.debug {
		r.renderPredictions(snap, vp)
	}

	ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetCell(vp.col(snap.Ball.X), vp.row(snap.Ball.Y), ballStyle, BallChar)

	r.renderStatus(snap, screenH)

	if snap.Over {
		r.renderGameOver(snap, screenW, screenH)
	}

	r.screen.Show()
}

// renderPredictions marks where each AI expects to meet the ball
func (r *Renderer) renderPredictions(snap game.Snapshot, vp viewport) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	for i, paddle := range snap.Paddles {
		if !snap.HasPrediction[i] {
			continue
		}
		x := vp.col(paddle.X) + 1
		if game.Side(i) == game.SideRight {
			x = vp.col(paddle.X) - 1
		}
		r.screen.SetCell(x, vp.row(snap.Predictions[i]), style, PredictionChar)
	}
}

func (r *Renderer) renderStatus(snap game.Snapshot, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRow(statusY, statusStyle)

	var text string
	if r.debug {
		angle := "-"
		if snap.HasBounce {
			angle = fmt.Sprintf("%+.1f", snap.BounceAngle)
		}
		text = fmt.Sprintf(" Speed %.0f | Angle %s | Pred %s %s",
			snap.Ball.Speed, angle, predictionText(snap, game.SideLeft), predictionText(snap, game.SideRight))
	} else if snap.PointsToWin > 0 {
		text = fmt.Sprintf(" First to %d wins | d: debug | q: quit", snap.PointsToWin)
	} else {
		text = " Endless rally | d: debug | q: quit"
	}
	r.screen.DrawText(0, statusY, text, statusStyle)
}

func predictionText(snap game.Snapshot, side game.Side) string {
	if !snap.HasPrediction[side] {
		return "-"
	}
	return fmt.Sprintf("%.0f", snap.Predictions[side])
}

// renderScoreboard draws a stadium-style scoreboard at top center
func (r *Renderer) renderScoreboard(snap game.Snapshot, screenW int) {
	// Scoreboard format: [ LEFT  3 - 2  RIGHT ]
	leftLabel := playerLabel(snap.Paddles[game.SideLeft], "LEFT")
	rightLabel := playerLabel(snap.Paddles[game.SideRight], "RIGHT")
	leftScore := fmt.Sprintf("%d", snap.Scores[game.SideLeft])
	rightScore := fmt.Sprintf("%d", snap.Scores[game.SideRight])

	boardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	parts := []struct {
		text  string
		style tcell.Style
	}{
		{"[ ", boardStyle},
		{leftLabel, boardStyle.Foreground(SideColor(int(game.SideLeft)))},
		{" " + leftScore + " - " + rightScore + " ", boardStyle},
		{rightLabel, boardStyle.Foreground(SideColor(int(game.SideRight)))},
		{" ]", boardStyle},
	}

	width := 0
	for _, p := range parts {
		width += len(p.text)
	}
	x := (screenW - width) / 2
	for _, p := range parts {
		r.screen.DrawText(x, 0, p.text, p.style)
		x += len(p.text)
	}
}

func playerLabel(p game.PaddleState, name string) string {
	if p.Human {
		return name
	}
	return name + " (AI)"
}

// renderGameOver draws the result box over the court
func (r *Renderer) renderGameOver(snap game.Snapshot, screenW, screenH int) {
	boxW := 36
	boxH := 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.DrawPanel(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite), fillStyle)

	winner := "LEFT WINS!"
	if snap.Winner == game.SideRight {
		winner = "RIGHT WINS!"
	}
	winnerStyle := fillStyle.Foreground(SideColor(int(snap.Winner))).Bold(true)
	r.screen.DrawCentered(boxY+2, winner, winnerStyle)

	score := fmt.Sprintf("Final Score: %d - %d", snap.Scores[game.SideLeft], snap.Scores[game.SideRight])
	r.screen.DrawCentered(boxY+3, score, fillStyle.Foreground(tcell.ColorWhite))

	r.screen.DrawCentered(boxY+4, "ENTER rematch | q quit", fillStyle.Foreground(tcell.ColorGreen))
}
