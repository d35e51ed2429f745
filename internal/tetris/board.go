package tetris

import (
	"fmt"
	"strings"
)

// Clear empties every cell of the board
func (board *Board) Clear() {
	*board = Board{}
}

// At returns the cell at column x, row y. Cells off the board read as empty.
func (board *Board) At(x int, y int) Kind {
	if !ValidDisplayLocation(x, y) {
		return KindNone
	}
	return board[y][x]
}

// ValidBlockLocation checks if a block may occupy column x, row y.
// Rows above the top of the board are open; columns outside the board
// and rows below the bottom are not.
func (board *Board) ValidBlockLocation(x int, y int) bool {
	if x < 0 || x >= Cols || y >= Rows {
		return false
	}
	if y < 0 {
		return true
	}
	return board[y][x] == KindNone
}

// Collides checks if any block of the piece overlaps a wall, the floor or a settled cell
func (board *Board) Collides(piece Piece) bool {
	collides := false
	piece.eachBlock(func(x int, y int, _ Kind) {
		if !collides && !board.ValidBlockLocation(x, y) {
			collides = true
		}
	})
	return collides
}

// Merge attaches the piece to the board. Blocks above the top are dropped.
func (board *Board) Merge(piece Piece) {
	piece.eachBlock(func(x int, y int, kind Kind) {
		if ValidDisplayLocation(x, y) {
			board[y][x] = kind
		}
	})
}

// ClearLines deletes every full line and returns how many were deleted
func (board *Board) ClearLines() int {
	lines := 0
	for y := Rows - 1; y >= 0; {
		if !board.isFullLine(y) {
			y--
			continue
		}
		board.deleteLine(y)
		lines++
	}
	return lines
}

// isFullLine checks if line is full
func (board *Board) isFullLine(y int) bool {
	for x := 0; x < Cols; x++ {
		if board[y][x] == KindNone {
			return false
		}
	}
	return true
}

// deleteLine removes the line and shifts every line above it down by one
func (board *Board) deleteLine(line int) {
	for y := line; y > 0; y-- {
		board[y] = board[y-1]
	}
	board[0] = [Cols]Kind{}
}

// FullLines returns the rows that are complete
func (board *Board) FullLines() []int {
	lines := make([]int, 0, 1)
	for y := 0; y < Rows; y++ {
		if board.isFullLine(y) {
			lines = append(lines, y)
		}
	}
	return lines
}

// Height returns the number of rows from the floor up to the highest settled cell
func (board *Board) Height() int {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if board[y][x] != KindNone {
				return Rows - y
			}
		}
	}
	return 0
}

// String encodes the board as Rows lines of Cols color id digits
func (board Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Cols; x++ {
			sb.WriteByte('0' + byte(board[y][x]))
		}
	}
	return sb.String()
}

// ParseBoard decodes a board produced by Board.String.
// '.' is accepted as an empty cell.
func ParseBoard(s string) (Board, error) {
	var board Board
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != Rows {
		return board, fmt.Errorf("%w: got %d rows, want %d", ErrBoardFormat, len(lines), Rows)
	}
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != Cols {
			return board, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardFormat, y, len(line), Cols)
		}
		for x := 0; x < Cols; x++ {
			char := line[x]
			switch {
			case char == '.':
				board[y][x] = KindNone
			case char >= '0' && char <= '0'+KindCount:
				board[y][x] = Kind(char - '0')
			default:
				return board, fmt.Errorf("%w: unexpected %q at row %d column %d", ErrBoardFormat, char, y, x)
			}
		}
	}
	return board, nil
}

// ValidDisplayLocation checks if the location is on the board
func ValidDisplayLocation(x int, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}
