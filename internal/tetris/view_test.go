package tetris

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func renderFrame(t *testing.T, ghost bool, frame Frame) tcell.SimulationScreen {
	t.Helper()
	screen := newTestScreen(t)
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	NewView(screen, ghost).Render(frame)
	return screen
}

// blockAt returns the rune drawn for board cell x, y
func blockAt(screen tcell.SimulationScreen, x int, y int) rune {
	char, _, _, _ := screen.GetContent(2*x+boardXOffset+2, y+boardYOffset+1)
	return char
}

func TestViewIdle(t *testing.T) {
	screen := renderFrame(t, false, Frame{State: State{Status: StatusIdle}, Focused: true})

	text := screenText(screen)
	require.Contains(t, text, "TETRIS")
	require.Contains(t, text, "enter to start")
	require.Contains(t, text, "SCORE:")
	require.NotContains(t, text, "tab to focus")
	require.Contains(t, text, "sbar - hard drop")
	require.Contains(t, text, "q    - quit")
}

func TestViewRunning(t *testing.T) {
	board := boardFromBottom(t, "11........")
	state := State{
		Board:   board,
		Current: NewPiece(KindO),
		Next:    NewPiece(KindT),
		Score:   1200,
		Lines:   12,
		Status:  StatusRunning,
	}
	screen := renderFrame(t, true, Frame{State: state})

	require.Equal(t, '█', blockAt(screen, 0, Rows-1))
	require.Equal(t, '█', blockAt(screen, 1, Rows-1))
	require.Equal(t, ' ', blockAt(screen, 2, Rows-1))
	require.Equal(t, '█', blockAt(screen, 3, 0))
	require.Equal(t, '█', blockAt(screen, 4, 1))
	require.Equal(t, ' ', blockAt(screen, 5, 1))
	require.Equal(t, '░', blockAt(screen, 3, Rows-1))
	require.Equal(t, '░', blockAt(screen, 4, Rows-2))

	_, _, style, _ := screen.GetContent(2*4+boardXOffset+2, boardYOffset+1)
	fg, _, _ := style.Decompose()
	require.Equal(t, KindO.Color(), fg)

	text := screenText(screen)
	require.Contains(t, text, "   1200")
	require.Contains(t, text, "     12")
	require.Contains(t, text, "tab to focus")
	require.NotContains(t, text, "enter to start")
}

func TestViewFocusHintKeepsBoardVisible(t *testing.T) {
	state := State{
		Board:   boardFromBottom(t, "1111111111"),
		Current: NewPiece(KindO),
		Next:    NewPiece(KindT),
		Status:  StatusRunning,
	}
	screen := renderFrame(t, false, Frame{State: state})

	for x := 0; x < Cols; x++ {
		require.Equal(t, '█', blockAt(screen, x, Rows-1), "column %d", x)
	}
	lines := strings.Split(screenText(screen), "\n")
	require.Contains(t, lines[focusHintY], "tab to focus")
	for y := 0; y < focusHintY; y++ {
		require.NotContains(t, lines[y], "tab to focus", "line %d", y)
	}
}

func TestViewWithoutGhost(t *testing.T) {
	state := State{Current: NewPiece(KindI), Next: NewPiece(KindI), Status: StatusRunning}
	screen := renderFrame(t, false, Frame{State: state, Focused: true})

	require.NotContains(t, screenText(screen), "░")
}

func TestViewPausedHidesBoard(t *testing.T) {
	state := State{
		Board:   boardFromBottom(t, "1111111110"),
		Current: NewPiece(KindO),
		Status:  StatusRunning,
	}
	screen := renderFrame(t, true, Frame{State: state, Paused: true, Focused: true})

	require.Contains(t, screenText(screen), "Paused")
	require.Equal(t, ' ', blockAt(screen, 0, Rows-1))
}

func TestViewGameOver(t *testing.T) {
	state := State{
		Board:  boardFromBottom(t, "2........."),
		Score:  900,
		Status: StatusGameOver,
	}
	screen := renderFrame(t, false, Frame{State: state, Focused: true, Ranking: []int{900, 400, 0}})

	text := screenText(screen)
	require.Contains(t, text, "GAME OVER")
	require.Contains(t, text, "enter for new game")
	require.Contains(t, text, "1:    900")
	require.Contains(t, text, "2:    400")
	require.Equal(t, '█', blockAt(screen, 0, Rows-1))

	lines := strings.Split(text, "\n")
	require.Contains(t, lines[boardYOffset+2], "GAME OVER")
}
