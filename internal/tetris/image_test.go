package tetris

import (
	"bytes"
	"image/png"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/image/colornames"
)

func TestBoardImage(t *testing.T) {
	c := qt.New(t)
	board := boardFromBottom(t, "1......7..")

	img := BoardImage(board, 10)

	c.Assert(img.Bounds().Dx(), qt.Equals, Cols*10)
	c.Assert(img.Bounds().Dy(), qt.Equals, Rows*10)
	c.Assert(img.RGBAAt(0, 0), qt.Equals, colornames.Ghostwhite)
	c.Assert(img.RGBAAt(0, (Rows-1)*10), qt.Equals, KindI.RGBA())
	c.Assert(img.RGBAAt(8, Rows*10-2), qt.Equals, KindI.RGBA())
	c.Assert(img.RGBAAt(9, Rows*10-2), qt.Equals, colornames.Ghostwhite)
	c.Assert(img.RGBAAt(7*10+5, (Rows-1)*10+5), qt.Equals, KindZ.RGBA())
}

func TestRenderPNG(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer

	c.Assert(RenderPNG(&buf, boardFromBottom(t, "4444444444"), 0), qt.IsNil)

	img, err := png.Decode(&buf)
	c.Assert(err, qt.IsNil)
	c.Assert(img.Bounds().Dx(), qt.Equals, Cols*DefaultCellSize)
	r, g, b, _ := img.At(1, Rows*DefaultCellSize-2).RGBA()
	want := KindO.RGBA()
	c.Assert([]uint32{r >> 8, g >> 8, b >> 8}, qt.DeepEquals, []uint32{uint32(want.R), uint32(want.G), uint32(want.B)})
}
