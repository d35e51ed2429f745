package tetris

import (
	"github.com/gdamore/tcell/v2"
)

var keyHelp = []string{
	"←  - left",
	"→  - right",
	"↓  - soft drop",
	"↑  - rotate",
	"x    - rotate",
	"sbar - hard drop",
	"enter - start",
	"p    - pause",
	"tab  - focus",
	"q    - quit",
}

// ProcessEventKey process the key input event. It returns false when the player quits.
func (engine *Engine) ProcessEventKey(eventKey *tcell.EventKey) bool {
	var char rune
	if eventKey.Key() == tcell.KeyRune {
		char = eventKey.Rune()
	}
	return engine.processKey(eventKey.Key(), char)
}

// processKey maps a key to a game command
func (engine *Engine) processKey(key tcell.Key, char rune) bool {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyTab:
		engine.focused.Store(!engine.focused.Load())
		return true
	case tcell.KeyRune:
		if char == 'q' {
			return false
		}
	}

	if !engine.focused.Load() {
		return true
	}

	switch engine.game.Status() {

	// idle or game over
	case StatusIdle, StatusGameOver:

		switch key {
		case tcell.KeyEnter:
			engine.NewGame()
		case tcell.KeyRune:
			if char == 's' {
				engine.NewGame()
			}
		}

	// run
	case StatusRunning:

		if engine.paused {
			if key == tcell.KeyRune && char == 'p' {
				engine.UnPause()
			}
			return true
		}

		switch key {
		case tcell.KeyUp:
			engine.game.Rotate()
		case tcell.KeyDown:
			engine.game.SoftDrop()
		case tcell.KeyLeft:
			engine.game.MoveLeft()
		case tcell.KeyRight:
			engine.game.MoveRight()
		case tcell.KeyRune:
			switch char {
			case ' ':
				engine.game.HardDrop()
			case 'x':
				engine.game.Rotate()
			case 'p':
				engine.Pause()
			}
		}
		engine.afterUpdate()
	}

	return true
}
