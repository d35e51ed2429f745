package tetris

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/colornames"
)

// DefaultCellSize is the pixel size of one board cell in images
const DefaultCellSize = 24

// BoardImage draws the board on an image with cellSize pixels per cell.
// Each block leaves a one pixel gap on its right and bottom edges.
func BoardImage(board Board, cellSize int) *image.RGBA {
	if cellSize < 2 {
		cellSize = DefaultCellSize
	}
	img := image.NewRGBA(image.Rect(0, 0, Cols*cellSize, Rows*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Ghostwhite), image.Point{}, draw.Src)

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			kind := board[y][x]
			if kind == KindNone {
				continue
			}
			cell := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize-1, (y+1)*cellSize-1)
			draw.Draw(img, cell, image.NewUniform(kind.RGBA()), image.Point{}, draw.Src)
		}
	}
	return img
}

// RenderPNG writes the board as a PNG image
func RenderPNG(w io.Writer, board Board, cellSize int) error {
	return png.Encode(w, BoardImage(board, cellSize))
}
