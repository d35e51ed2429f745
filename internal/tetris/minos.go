package tetris

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

var kindNames = [KindCount + 1]string{"", "I", "J", "L", "O", "S", "T", "Z"}

// kindColors is the RGB color per kind, index 0 is the empty cell
var kindColors = [KindCount + 1]uint32{
	0x000000,
	0xf44336, // I
	0x2196f3, // J
	0x4caf50, // L
	0xffeb3b, // O
	0x9c27b0, // S
	0xff9800, // T
	0x00bcd4, // Z
}

// kindShapes holds the spawn orientation of every kind
var kindShapes = [KindCount + 1]Shape{
	KindNone: {},
	KindI: NewShape(KindI,
		"....",
		"####",
		"....",
		"....",
	),
	KindJ: NewShape(KindJ,
		"#..",
		"###",
		"...",
	),
	KindL: NewShape(KindL,
		"..#",
		"###",
		"...",
	),
	KindO: NewShape(KindO,
		"##",
		"##",
	),
	KindS: NewShape(KindS,
		".##",
		"##.",
		"...",
	),
	KindT: NewShape(KindT,
		".#.",
		"###",
		"...",
	),
	KindZ: NewShape(KindZ,
		"##.",
		".##",
		"...",
	),
}

// Kinds returns all tetromino kinds in color id order
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// String returns the kind letter
func (kind Kind) String() string {
	if kind > KindCount {
		return "?"
	}
	return kindNames[kind]
}

// Valid reports whether kind is one of the seven tetrominoes
func (kind Kind) Valid() bool {
	return kind >= KindI && kind <= KindZ
}

// Shape returns the spawn shape of the kind
func (kind Kind) Shape() Shape {
	if !kind.Valid() {
		return Shape{}
	}
	return kindShapes[kind]
}

// RGB returns the kind color as 0xRRGGBB
func (kind Kind) RGB() uint32 {
	if kind > KindCount {
		return 0
	}
	return kindColors[kind]
}

// RGBA returns the kind color for image rendering
func (kind Kind) RGBA() color.RGBA {
	rgb := kind.RGB()
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// Color returns the kind color for terminal rendering
func (kind Kind) Color() tcell.Color {
	if kind == KindNone {
		return tcell.ColorBlack
	}
	return tcell.NewHexColor(int32(kind.RGB()))
}

// NewShape builds a square shape from rows where '#' marks a block of kind.
// It panics on rows that do not form a square of size 1 to 4.
func NewShape(kind Kind, rows ...string) Shape {
	size := len(rows)
	if size < 1 || size > 4 {
		panic("tetris: shape size out of range")
	}
	shape := Shape{size: size}
	for y, row := range rows {
		if len(row) != size {
			panic("tetris: shape is not square")
		}
		for x, char := range row {
			if char == '#' {
				shape.cells[y][x] = kind
			}
		}
	}
	return shape
}

// Size returns the side length of the shape matrix
func (shape Shape) Size() int {
	return shape.size
}

// At returns the cell at column x, row y of the shape
func (shape Shape) At(x int, y int) Kind {
	if x < 0 || y < 0 || x >= shape.size || y >= shape.size {
		return KindNone
	}
	return shape.cells[y][x]
}

// Rotate returns the shape rotated 90 degrees clockwise
func Rotate(shape Shape) Shape {
	size := shape.size
	rotated := Shape{size: size}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			rotated.cells[j][size-1-i] = shape.cells[i][j]
		}
	}
	return rotated
}

// NewPiece creates a piece of kind at the spawn position
func NewPiece(kind Kind) Piece {
	return Piece{
		Kind:  kind,
		Shape: kind.Shape(),
		X:     Cols/2 - 2,
		Y:     0,
	}
}

// RandomPiece creates a piece of a uniformly random kind at the spawn position
func RandomPiece(rng Randomizer) Piece {
	return NewPiece(Kind(rng.Intn(KindCount) + 1))
}
