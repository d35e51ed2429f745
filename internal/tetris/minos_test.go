package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotateFourTimes(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			shape := kind.Shape()
			rotated := shape
			for i := 0; i < 4; i++ {
				rotated = Rotate(rotated)
			}
			require.Equal(t, shape, rotated)
		})
	}
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		kind Kind
		want Shape
	}{
		{KindT, NewShape(KindT, ".#.", ".##", ".#.")},
		{KindJ, NewShape(KindJ, ".##", ".#.", ".#.")},
		{KindL, NewShape(KindL, ".#.", ".#.", ".##")},
		{KindI, NewShape(KindI, "..#.", "..#.", "..#.", "..#.")},
		{KindO, NewShape(KindO, "##", "##")},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.want, Rotate(tt.kind.Shape()))
		})
	}
}

func TestRotationKeepsSilhouette(t *testing.T) {
	for _, kind := range Kinds() {
		shape := kind.Shape()
		for r := 0; r < 4; r++ {
			blocks := 0
			for y := 0; y < shape.Size(); y++ {
				for x := 0; x < shape.Size(); x++ {
					switch shape.At(x, y) {
					case KindNone:
					case kind:
						blocks++
					default:
						t.Fatalf("%v rotation %d has foreign cell %v", kind, r, shape.At(x, y))
					}
				}
			}
			require.Equal(t, 4, blocks, "%v rotation %d", kind, r)
			shape = Rotate(shape)
		}
	}
}

func TestKindsHaveDistinctShapes(t *testing.T) {
	seen := make(map[Shape]Kind)
	for _, kind := range Kinds() {
		require.True(t, kind.Valid())
		shape := kind.Shape()
		if other, ok := seen[shape]; ok {
			t.Fatalf("%v and %v share a shape", kind, other)
		}
		seen[shape] = kind
	}
	require.Len(t, seen, KindCount)
	require.False(t, KindNone.Valid())
}

func TestNewPieceSpawnPosition(t *testing.T) {
	for _, kind := range Kinds() {
		piece := NewPiece(kind)
		require.Equal(t, Cols/2-2, piece.X)
		require.Equal(t, 0, piece.Y)
		require.Equal(t, kind, piece.Kind)
		require.False(t, (&Board{}).Collides(piece), "%v collides at spawn", kind)
	}
}

func TestRandomPieceUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := make(map[Kind]int)
	const draws = 70000
	for i := 0; i < draws; i++ {
		counts[RandomPiece(rng).Kind]++
	}

	require.Len(t, counts, KindCount)
	for _, kind := range Kinds() {
		require.InDelta(t, draws/KindCount, counts[kind], draws/KindCount*0.05, "kind %v", kind)
	}
}

func TestKindColors(t *testing.T) {
	colors := make(map[uint32]bool)
	for _, kind := range Kinds() {
		colors[kind.RGB()] = true
		require.Equal(t, uint8(0xff), kind.RGBA().A)
	}
	require.Len(t, colors, KindCount)
	require.Equal(t, "?", Kind(9).String())
}
