package tetris

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// View draws game snapshots to a terminal screen. It never mutates game state.
type View struct {
	screen tcell.Screen
	ghost  bool
}

// Frame is everything the view needs to draw one frame
type Frame struct {
	State   State
	Focused bool
	Paused  bool
	Ranking []int
}

var (
	styleBackground = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	styleBoarder    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
)

// NewView creates a view drawing to screen
func NewView(screen tcell.Screen, ghost bool) *View {
	return &View{screen: screen, ghost: ghost}
}

// Render draws the frame and shows it
func (view *View) Render(frame Frame) {
	state := frame.State

	view.screen.Fill(' ', styleBackground)
	view.drawBoardBoarder()
	view.drawPreviewBoarder()
	view.drawTexts(frame)

	switch {
	case frame.Paused && state.Running():
		view.drawPaused()

	case state.Running():
		view.drawBoard(&state.Board)
		view.drawPreviewMino(state.Next)
		if view.ghost {
			view.drawDropMino(dropPosition(&state.Board, state.Current))
		}
		view.drawMino(state.Current)

	case state.GameOver():
		view.drawBoard(&state.Board)
		view.drawGameOver()
		view.drawRankingScores(frame.Ranking)

	default:
		view.drawIdle()
	}

	if !frame.Focused {
		view.drawTextCenter(focusHintY, "tab to focus", tcell.ColorBlack, tcell.ColorYellow)
	}

	view.screen.Show()
}

// focusHintY is the first line below the board boarder
const focusHintY = boardYOffset + Rows + 2

// drawBoardBoarder draws the board boarder
func (view *View) drawBoardBoarder() {
	xOffset := boardXOffset
	yOffset := boardYOffset
	xEnd := boardXOffset + Cols*2 + 4
	yEnd := boardYOffset + Rows + 2
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			}
		}
	}
}

// drawPreviewBoarder draws the preview boarder
func (view *View) drawPreviewBoarder() {
	xOffset := boardXOffset + Cols*2 + 8
	yOffset := boardYOffset
	xEnd := xOffset + 14
	yEnd := yOffset + 6
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			}
		}
	}
}

// drawTexts draws the score panel and key help
func (view *View) drawTexts(frame Frame) {
	xOffset := boardXOffset + Cols*2 + 8
	yOffset := boardYOffset + 7

	view.drawText(xOffset, yOffset, "SCORE:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%7d", frame.State.Score), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "LINES:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%7d", frame.State.Lines), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	for _, help := range keyHelp {
		view.drawText(xOffset, yOffset, help, tcell.ColorLightGray, tcell.ColorBlack)
		yOffset++
	}
}

// drawBoard draws the settled cells
func (view *View) drawBoard(board *Board) {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if board[y][x] != KindNone {
				view.drawBlock(x, y, board[y][x].Color())
			}
		}
	}
}

// drawMino draws the falling piece
func (view *View) drawMino(piece Piece) {
	piece.eachBlock(func(x int, y int, kind Kind) {
		if ValidDisplayLocation(x, y) {
			view.drawBlock(x, y, kind.Color())
		}
	})
}

// drawDropMino draws where the falling piece would land
func (view *View) drawDropMino(piece Piece) {
	piece.eachBlock(func(x int, y int, kind Kind) {
		if !ValidDisplayLocation(x, y) {
			return
		}
		style := tcell.StyleDefault.Foreground(kind.Color()).Background(tcell.ColorBlack)
		view.screen.SetContent(2*x+boardXOffset+2, y+boardYOffset+1, '░', nil, style)
		view.screen.SetContent(2*x+boardXOffset+3, y+boardYOffset+1, '░', nil, style)
	})
}

// drawPreviewMino draws the next piece inside the preview box
func (view *View) drawPreviewMino(piece Piece) {
	size := piece.Shape.Size()
	style := tcell.StyleDefault.Foreground(piece.Kind.Color()).Background(piece.Kind.Color())
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if piece.Shape.At(x, y) == KindNone {
				continue
			}
			xOffset := 2*x + 2*Cols + boardXOffset + 11 + (4 - size)
			view.screen.SetContent(xOffset, y+boardYOffset+1, '█', nil, style)
			view.screen.SetContent(xOffset+1, y+boardYOffset+1, '█', nil, style)
		}
	}
}

// drawBlock draws a block
func (view *View) drawBlock(x int, y int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color).Background(color)
	view.screen.SetContent(2*x+boardXOffset+2, y+boardYOffset+1, '█', nil, style)
	view.screen.SetContent(2*x+boardXOffset+3, y+boardYOffset+1, '█', nil, style)
}

// drawIdle draws the start prompt
func (view *View) drawIdle() {
	yOffset := (Rows+1)/2 + boardYOffset
	view.drawTextCenter(yOffset, "TETRIS", tcell.ColorWhite, tcell.ColorBlack)
	view.drawTextCenter(yOffset+2, "enter to start", tcell.ColorWhite, tcell.ColorBlack)
}

// drawPaused draws Paused
func (view *View) drawPaused() {
	yOffset := (Rows+1)/2 + boardYOffset
	view.drawTextCenter(yOffset, "Paused", tcell.ColorWhite, tcell.ColorBlack)
}

// drawGameOver draws GAME OVER
func (view *View) drawGameOver() {
	yOffset := boardYOffset + 2
	view.drawTextCenter(yOffset, " GAME OVER", tcell.ColorWhite, tcell.ColorBlack)
	yOffset += 2
	view.drawTextCenter(yOffset, "enter for new game", tcell.ColorWhite, tcell.ColorBlack)
}

// drawRankingScores draws the ranking scores
func (view *View) drawRankingScores(scores []int) {
	yOffset := boardYOffset + 7
	for index, score := range scores {
		view.drawTextCenter(yOffset+index, fmt.Sprintf("%1d: %6d", index+1, score), tcell.ColorWhite, tcell.ColorBlack)
	}
}

// drawText draws the provided text
func (view *View) drawText(x int, y int, text string, fg tcell.Color, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	index := 0
	for _, char := range text {
		view.screen.SetContent(x+index, y, char, nil, style)
		index++
	}
}

// drawTextCenter draws text in the center of the board
func (view *View) drawTextCenter(y int, text string, fg tcell.Color, bg tcell.Color) {
	width := len([]rune(text))
	xOffset := Cols - (width+1)/2 + boardXOffset + 2
	view.drawText(xOffset, y, text, fg, bg)
}
