package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/arcadepong/internal/game"
)

// KeyToDirection maps a key to the paddle it steers and the direction.
// W/S drive the left paddle, the arrow keys the right one.
func KeyToDirection(key tcell.Key, r rune) (game.Side, game.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return game.SideRight, game.DirUp, true
	case tcell.KeyDown:
		return game.SideRight, game.DirDown, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.SideLeft, game.DirUp, true
		case 's', 'S':
			return game.SideLeft, game.DirDown, true
		}
	}
	return game.SideLeft, game.DirHold, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// IsDebugKey toggles the bounce angle and prediction overlay
func IsDebugKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'd' || r == 'D')
}
