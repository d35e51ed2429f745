package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGameIdleIgnoresInput(t *testing.T) {
	game := NewGame(GameConfig{Rand: newSequence(KindT)})
	before := game.State()

	require.False(t, game.MoveLeft())
	require.False(t, game.MoveRight())
	require.False(t, game.Rotate())
	require.False(t, game.SoftDrop())
	require.Equal(t, 0, game.HardDrop())
	require.False(t, game.Tick())
	require.False(t, game.Advance(time.Hour))

	require.Equal(t, before, game.State())
	require.Equal(t, StatusIdle, game.Status())
}

func TestGameStart(t *testing.T) {
	game := NewGame(GameConfig{Rand: newSequence(KindS, KindZ)})
	require.True(t, game.Start())

	state := game.State()
	require.Equal(t, StatusRunning, state.Status)
	require.True(t, state.Running())
	require.Equal(t, 0, state.Score)
	require.Equal(t, Board{}, state.Board)
	require.Equal(t, NewPiece(KindS), state.Current)
	require.Equal(t, NewPiece(KindZ), state.Next)

	require.False(t, game.Start(), "start while running")
	require.Equal(t, state, game.State())
}

func TestGameRestartAfterGameOver(t *testing.T) {
	game := runningGame(t, boardFromBottom(t, "1111111110"), NewPiece(KindO))
	game.score = 700
	game.status = StatusGameOver

	require.True(t, game.Start())
	require.Equal(t, StatusRunning, game.Status())
	require.Equal(t, 0, game.Score())
	require.Equal(t, 0, game.Lines())
	require.Equal(t, Board{}, game.State().Board)
}

func TestGameOPieceFallsToFloor(t *testing.T) {
	game := runningGame(t, Board{}, pieceAt(KindO, 4, 0))
	require.False(t, game.board.Collides(game.current))

	for i := 1; i <= 18; i++ {
		require.False(t, game.Tick(), "tick %d", i)
		require.Equal(t, i, game.current.Y)
	}
	require.True(t, game.Tick(), "19th tick locks")

	want := boardFromBottom(t,
		"....44....",
		"....44....",
	)
	require.Equal(t, want, game.State().Board)
	require.Equal(t, NewPiece(KindT), game.State().Current)
	require.Equal(t, StatusRunning, game.Status())
}

func TestGameLockVerticalIClearsLine(t *testing.T) {
	i := NewPiece(KindI).CloneRotateRight()
	i.X = Cols - 3
	game := runningGame(t, boardFromBottom(t, "222222222."), i)

	require.Equal(t, 16, game.HardDrop())

	require.Equal(t, 1, game.Lines())
	require.Equal(t, ScorePerLine, game.Score())
	want := boardFromBottom(t,
		".........1",
		".........1",
		".........1",
	)
	require.Equal(t, want, game.State().Board)
	require.Equal(t, [Cols]Kind{}, game.State().Board[0])
}

func TestGameLockHorizontalIClearsLine(t *testing.T) {
	game := runningGame(t, boardFromBottom(t, "333333...."), pieceAt(KindI, 6, 0))

	game.HardDrop()

	require.Equal(t, 1, game.Lines())
	require.Equal(t, 100, game.Score())
	require.Equal(t, Board{}, game.State().Board)
}

func TestGameScoresEveryLine(t *testing.T) {
	game := runningGame(t, boardFromBottom(t,
		"55555555.5",
		"55555555.5",
		"55555555.5",
		"55555555..",
	), NewPiece(KindI).CloneRotateRight())
	game.current.X = 6

	game.HardDrop()

	require.Equal(t, 3, game.Lines())
	require.Equal(t, 300, game.Score())
	require.Equal(t, boardFromBottom(t, "555555551."), game.State().Board)
}

func TestGameHardDropOntoStack(t *testing.T) {
	board := boardFromBottom(t,
		"....7.....",
		"....7.....",
		"....7.....",
		"....77....",
		"....77....",
		"....77....",
		"....77....",
		"....77....",
	)
	game := runningGame(t, board, pieceAt(KindO, 4, 0), KindL)

	require.Equal(t, 10, game.HardDrop())

	got := game.State().Board
	require.Equal(t, KindO, got[10][4])
	require.Equal(t, KindO, got[10][5])
	require.Equal(t, KindO, got[11][4])
	require.Equal(t, KindO, got[11][5])
	require.Equal(t, KindNone, got[9][4])
	require.Equal(t, Rows-10, got.Height())

	// the preview piece is promoted
	require.Equal(t, NewPiece(KindL), game.State().Current)
	require.False(t, game.Tick())
	require.Equal(t, 1, game.State().Current.Y)
}

func TestGameHardDropFromRest(t *testing.T) {
	game := runningGame(t, Board{}, pieceAt(KindO, 0, Rows-2))

	require.Equal(t, 0, game.HardDrop())
	require.Equal(t, KindO, game.State().Board[Rows-1][0])
}

func TestGameLateralMovesStopAtWalls(t *testing.T) {
	game := runningGame(t, Board{}, pieceAt(KindO, 1, 5))

	require.True(t, game.MoveLeft())
	require.False(t, game.MoveLeft())
	require.Equal(t, 0, game.current.X)

	for game.MoveRight() {
	}
	require.Equal(t, Cols-2, game.current.X)
	require.Equal(t, 5, game.current.Y)
}

func TestGameRotateRejectedAtWall(t *testing.T) {
	i := NewPiece(KindI).CloneRotateRight()
	i.X = -2
	i.Y = 5
	game := runningGame(t, Board{}, i)

	require.False(t, game.Rotate())
	require.Equal(t, i, game.current)

	game.current.X = 0
	require.True(t, game.Rotate())
	require.Equal(t, Rotate(i.Shape), game.current.Shape)
}

func TestGameRotateRejectedByStack(t *testing.T) {
	board := boardFromBottom(t, "...1......", "...1......")
	game := runningGame(t, board, pieceAt(KindT, 2, Rows-4))
	require.False(t, game.board.Collides(game.current))
	before := game.current

	require.False(t, game.Rotate())
	require.Equal(t, before, game.current)
}

func TestGameOverWhenSpawnCollides(t *testing.T) {
	board := Board{}
	for x := 2; x < 8; x++ {
		board[1][x] = KindJ
	}
	game := runningGame(t, board, pieceAt(KindO, 8, 0))

	require.False(t, game.SoftDrop())
	game.HardDrop()

	require.Equal(t, StatusGameOver, game.Status())
	require.True(t, game.State().GameOver())

	before := game.State()
	require.False(t, game.Tick())
	require.False(t, game.Advance(time.Hour))
	require.False(t, game.MoveLeft())
	require.Equal(t, before, game.State())
}

func TestGameAdvanceAccumulatesFrames(t *testing.T) {
	game := runningGame(t, Board{}, pieceAt(KindO, 4, 0))
	require.Equal(t, DefaultGravity, game.Gravity())

	require.False(t, game.Advance(0))
	require.False(t, game.Advance(-time.Second))

	for i := 0; i < 29; i++ {
		require.False(t, game.Advance(16*time.Millisecond))
	}
	require.Equal(t, 0, game.current.Y)

	require.True(t, game.Advance(40*time.Millisecond))
	require.Equal(t, 1, game.current.Y)

	// a long frame fires one step and keeps the remainder
	require.True(t, game.Advance(1200*time.Millisecond))
	require.Equal(t, 2, game.current.Y)
	require.True(t, game.Advance(300*time.Millisecond))
	require.Equal(t, 3, game.current.Y)
	require.False(t, game.Advance(495*time.Millisecond))
}

func TestGameCustomGravity(t *testing.T) {
	game := NewGame(GameConfig{Gravity: 100 * time.Millisecond, Rand: newSequence(KindO)})
	game.Start()

	require.True(t, game.Advance(100*time.Millisecond))
	require.Equal(t, 1, game.State().Current.Y)
}
