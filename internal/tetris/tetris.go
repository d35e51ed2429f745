// Package tetris implements a Tetris game engine and its terminal host.
//
// Game is the state machine: a 10x20 board, the falling piece, score and
// status. Engine mounts a Game on a tcell screen, drives gravity from a frame
// loop and maps key events to moves while it holds input focus.
//
// Modified and adapted from github.com/MichaelS11/go-tetris.git
// Under MIT.
package tetris

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Play mounts an engine on screen with focus, runs it until the player quits
// or ctx is done, and always unmounts it
func Play(ctx context.Context, screen tcell.Screen, config EngineConfig) (*Engine, error) {
	engine := NewEngine(config)
	if err := engine.Mount(screen); err != nil {
		return engine, err
	}
	defer engine.Unmount()

	engine.Focus()
	return engine, engine.Run(ctx)
}
