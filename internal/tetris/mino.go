package tetris

// CloneMoveLeft creates copy of the piece moved one column left
func (piece Piece) CloneMoveLeft() Piece {
	piece.X--
	return piece
}

// CloneMoveRight creates copy of the piece moved one column right
func (piece Piece) CloneMoveRight() Piece {
	piece.X++
	return piece
}

// CloneMoveDown creates copy of the piece moved one row down
func (piece Piece) CloneMoveDown() Piece {
	piece.Y++
	return piece
}

// CloneRotateRight creates copy of the piece rotated clockwise
func (piece Piece) CloneRotateRight() Piece {
	piece.Shape = Rotate(piece.Shape)
	return piece
}

// Empty reports whether the piece has no blocks
func (piece Piece) Empty() bool {
	return piece.Shape.size == 0
}

// eachBlock calls fn with the board coordinates of every block of the piece
func (piece Piece) eachBlock(fn func(x int, y int, kind Kind)) {
	shape := piece.Shape
	for j := 0; j < shape.size; j++ {
		for i := 0; i < shape.size; i++ {
			if shape.cells[j][i] == KindNone {
				continue
			}
			fn(piece.X+i, piece.Y+j, shape.cells[j][i])
		}
	}
}

// Blocks returns the board coordinates of every block of the piece
func (piece Piece) Blocks() [][2]int {
	blocks := make([][2]int, 0, 4)
	piece.eachBlock(func(x int, y int, _ Kind) {
		blocks = append(blocks, [2]int{x, y})
	})
	return blocks
}
