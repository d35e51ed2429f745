package tetris

import (
	"errors"
	"time"
)

const (
	// Cols is the board width
	Cols = 10
	// Rows is the board height
	Rows = 20

	// ScorePerLine is added to the score for every cleared line
	ScorePerLine = 100

	// DefaultGravity is the gravity tick interval
	DefaultGravity = 500 * time.Millisecond
	// DefaultFPS is the default frame rate of the engine loop
	DefaultFPS = 60

	rankingSize = 9

	boardXOffset = 4
	boardYOffset = 2
)

const (
	// KindNone marks an empty cell
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	// KindCount is the number of tetromino kinds
	KindCount = 7
)

const (
	// StatusIdle is before the first game
	StatusIdle Status = iota
	// StatusRunning is while a game is in progress
	StatusRunning
	// StatusGameOver is after a spawned piece collided
	StatusGameOver
)

// ErrBoardFormat is returned when a board string cannot be parsed
var ErrBoardFormat = errors.New("invalid board format")

type (
	// Kind is the tetromino type. It doubles as the color id of a board cell.
	Kind uint8

	// Status is the game state machine state
	Status int

	// Shape is a square matrix of at most 4x4 cells
	Shape struct {
		size  int
		cells [4][4]Kind
	}

	// Piece is the falling tetromino
	Piece struct {
		Kind  Kind
		Shape Shape
		X     int
		Y     int
	}

	// Board holds the settled cells, indexed [y][x]
	Board [Rows][Cols]Kind

	// Randomizer picks the next tetromino kind. *math/rand.Rand satisfies it.
	Randomizer interface {
		Intn(n int) int
	}

	// State is a read-only snapshot of a game
	State struct {
		Board   Board
		Current Piece
		Next    Piece
		Score   int
		Lines   int
		Status  Status
	}

	// Result is reported when a game ends
	Result struct {
		Score int
		Lines int
		Board Board
	}
)

// String returns the status name
func (status Status) String() string {
	switch status {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game over"
	}
	return "unknown"
}

// Running reports whether a game is in progress
func (state State) Running() bool {
	return state.Status == StatusRunning
}

// GameOver reports whether the last game has ended
func (state State) GameOver() bool {
	return state.Status == StatusGameOver
}
