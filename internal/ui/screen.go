package ui

import "github.com/gdamore/tcell/v2"

// SideColors are the team colours, indexed by game.Side
var SideColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorBlue,
}

// Screen is the small drawing surface the renderer needs on top of tcell
type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// InitScreen opens the terminal with the cursor hidden
func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) { return s.screen.Size() }
func (s *Screen) Clear()            { s.screen.Clear() }
func (s *Screen) Show()             { s.screen.Show() }
func (s *Screen) Fini()             { s.screen.Fini() }

// Sync redraws the whole terminal, used after a resize
func (s *Screen) Sync() { s.screen.Sync() }

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// DrawCentered writes text horizontally centred on row y
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	s.DrawText((w-len([]rune(text)))/2, y, text, style)
}

// FillRow paints a full-width bar on row y
func (s *Screen) FillRow(y int, style tcell.Style) {
	w, _ := s.screen.Size()
	s.FillRect(0, y, w, 1, style, ' ')
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

// DrawColumn puts r on every step-th row of column x from top to bottom,
// inclusive. Step 1 draws a solid bar, step 2 a dashed line.
func (s *Screen) DrawColumn(x, top, bottom, step int, style tcell.Style, r rune) {
	if step < 1 {
		step = 1
	}
	for y := top; y <= bottom; y += step {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

// DrawPanel draws a bordered box with its interior filled by fill
func (s *Screen) DrawPanel(x, y, w, h int, border, fill tcell.Style) {
	const (
		topLeft     = '┌'
		topRight    = '┐'
		bottomLeft  = '└'
		bottomRight = '┘'
		horizontal  = '─'
		vertical    = '│'
	)
	if w < 2 || h < 2 {
		return
	}

	s.FillRect(x+1, y+1, w-2, h-2, fill, ' ')
	s.FillRect(x+1, y, w-2, 1, border, horizontal)
	s.FillRect(x+1, y+h-1, w-2, 1, border, horizontal)
	s.DrawColumn(x, y+1, y+h-2, 1, border, vertical)
	s.DrawColumn(x+w-1, y+1, y+h-2, 1, border, vertical)

	s.SetCell(x, y, border, topLeft)
	s.SetCell(x+w-1, y, border, topRight)
	s.SetCell(x, y+h-1, border, bottomLeft)
	s.SetCell(x+w-1, y+h-1, border, bottomRight)
}

// SideStyle is the foreground style for a team, by game.Side index
func SideStyle(side int) tcell.Style {
	return tcell.StyleDefault.Foreground(SideColor(side))
}

func SideColor(side int) tcell.Color {
	if side < 0 || side >= len(SideColors) {
		return tcell.ColorWhite
	}
	return SideColors[side]
}
