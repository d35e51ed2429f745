package tetris

import (
	"strings"
	"testing"
)

// sequence is a Randomizer returning its values in a loop
type sequence struct {
	values []int
	index  int
}

func newSequence(kinds ...Kind) *sequence {
	values := make([]int, len(kinds))
	for i, kind := range kinds {
		values[i] = int(kind) - 1
	}
	return &sequence{values: values}
}

func (s *sequence) Intn(n int) int {
	value := s.values[s.index%len(s.values)]
	s.index++
	return value % n
}

// boardFromBottom builds a board whose last rows are the given rows
func boardFromBottom(t *testing.T, rows ...string) Board {
	t.Helper()
	lines := make([]string, 0, Rows)
	for i := 0; i < Rows-len(rows); i++ {
		lines = append(lines, strings.Repeat(".", Cols))
	}
	lines = append(lines, rows...)
	board, err := ParseBoard(strings.Join(lines, "\n"))
	if err != nil {
		t.Fatalf("ParseBoard() error = %v", err)
	}
	return board
}

// runningGame returns a started game with current replaced by piece
func runningGame(t *testing.T, board Board, piece Piece, next ...Kind) *Game {
	t.Helper()
	if len(next) == 0 {
		next = []Kind{KindT}
	}
	game := NewGame(GameConfig{Rand: newSequence(next...)})
	game.Start()
	game.board = board
	game.current = piece
	return game
}

func pieceAt(kind Kind, x int, y int) Piece {
	piece := NewPiece(kind)
	piece.X = x
	piece.Y = y
	return piece
}
