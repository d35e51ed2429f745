package tetris

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollides(t *testing.T) {
	stack := boardFromBottom(t,
		"....1.....",
		"....1.....",
	)

	tests := []struct {
		name  string
		board Board
		piece Piece
		want  bool
	}{
		{"spawn on empty board", Board{}, NewPiece(KindO), false},
		{"O at column 4 row 0", Board{}, pieceAt(KindO, 4, 0), false},
		{"left wall", Board{}, pieceAt(KindO, -1, 5), true},
		{"right wall", Board{}, pieceAt(KindO, Cols-1, 5), true},
		{"touching right wall", Board{}, pieceAt(KindO, Cols-2, 5), false},
		{"on the floor", Board{}, pieceAt(KindO, 0, Rows-2), false},
		{"through the floor", Board{}, pieceAt(KindO, 0, Rows-1), true},
		{"empty shape rows below the floor", Board{}, pieceAt(KindI, 0, Rows-2), false},
		{"above the top", Board{}, pieceAt(KindO, 4, -1), false},
		{"far above the top", Board{}, pieceAt(KindO, 4, -10), false},
		{"above the top outside the walls", Board{}, pieceAt(KindO, -1, -5), true},
		{"overlaps settled cell", stack, pieceAt(KindO, 3, Rows-3), true},
		{"beside settled cell", stack, pieceAt(KindO, 5, Rows-2), false},
		{"on top of settled cell", stack, pieceAt(KindO, 3, Rows-4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.Collides(tt.piece); got != tt.want {
				t.Errorf("Collides() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollidesMatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		var board Board
		for y := 0; y < Rows; y++ {
			for x := 0; x < Cols; x++ {
				if rng.Intn(5) == 0 {
					board[y][x] = Kind(rng.Intn(KindCount) + 1)
				}
			}
		}
		piece := pieceAt(Kind(rng.Intn(KindCount)+1), rng.Intn(Cols+4)-2, rng.Intn(Rows+6)-4)
		for r := rng.Intn(4); r > 0; r-- {
			piece = piece.CloneRotateRight()
		}

		want := false
		for _, block := range piece.Blocks() {
			x, y := block[0], block[1]
			switch {
			case x < 0 || x >= Cols || y >= Rows:
				want = true
			case y >= 0 && board[y][x] != KindNone:
				want = true
			}
		}

		require.Equal(t, want, board.Collides(piece), "piece %v at (%d,%d)\n%s", piece.Kind, piece.X, piece.Y, board)
	}
}

func TestMerge(t *testing.T) {
	var board Board
	board.Merge(pieceAt(KindT, 0, Rows-2))

	want := boardFromBottom(t,
		".6........",
		"666.......",
	)
	require.Equal(t, want, board)
}

func TestMergeDropsBlocksAboveTop(t *testing.T) {
	var board Board
	board.Merge(pieceAt(KindO, 4, -1))

	want := Board{}
	want[0][4] = KindO
	want[0][5] = KindO
	require.Equal(t, want, board)
}

func TestClearLines(t *testing.T) {
	tests := []struct {
		name  string
		board []string
		want  []string
		lines int
	}{
		{
			name:  "no full line",
			board: []string{"1111111110"},
			want:  []string{"1111111110"},
			lines: 0,
		},
		{
			name:  "bottom line",
			board: []string{"..3.......", "1111111111"},
			want:  []string{"..3......."},
			lines: 1,
		},
		{
			name:  "adjacent lines",
			board: []string{"5.........", "2222222222", "3333333333"},
			want:  []string{"5........."},
			lines: 2,
		},
		{
			name:  "separated lines",
			board: []string{"7777777777", ".4........", "1111111111", "...6......"},
			want:  []string{".4........", "...6......"},
			lines: 2,
		},
		{
			name:  "tetris",
			board: []string{"1.........", "2222222222", "2222222222", "2222222222", "2222222222"},
			want:  []string{"1........."},
			lines: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromBottom(t, tt.board...)
			lines := board.ClearLines()
			require.Equal(t, tt.lines, lines)
			require.Equal(t, boardFromBottom(t, tt.want...), board)
			require.Empty(t, board.FullLines())
		})
	}
}

func TestClearLinesLeavesNoFullRow(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		var board Board
		for y := 0; y < Rows; y++ {
			if rng.Intn(3) == 0 {
				for x := 0; x < Cols; x++ {
					board[y][x] = KindL
				}
				continue
			}
			for x := 0; x < Cols; x++ {
				if rng.Intn(2) == 0 {
					board[y][x] = KindS
				}
			}
		}
		full := len(board.FullLines())

		lines := board.ClearLines()

		require.Equal(t, full, lines)
		require.Empty(t, board.FullLines())
		for y := 0; y < lines; y++ {
			require.Equal(t, [Cols]Kind{}, board[y], "row %d should be empty", y)
		}
	}
}

func TestParseBoard(t *testing.T) {
	board := boardFromBottom(t, "1234567...")
	parsed, err := ParseBoard(board.String())
	require.NoError(t, err)
	require.Equal(t, board, parsed)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few rows", strings.Repeat("0000000000\n", 5)},
		{"short row", strings.Repeat("0000000000\n", Rows-1) + "000"},
		{"bad cell", strings.Repeat("0000000000\n", Rows-1) + "000000000x"},
		{"color id out of range", strings.Repeat("0000000000\n", Rows-1) + "0000000008"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.input)
			if !errors.Is(err, ErrBoardFormat) {
				t.Errorf("ParseBoard() error = %v, want %v", err, ErrBoardFormat)
			}
		})
	}
}
