package tetris

import (
	"math/rand"
	"time"
)

// GameConfig configures a Game
type GameConfig struct {
	// Gravity is the interval between gravity ticks. Zero means DefaultGravity.
	Gravity time.Duration
	// Rand picks the tetromino kinds. Nil means a time seeded source.
	Rand Randomizer
}

// Game is the Tetris state machine. It is not safe for concurrent use;
// a single owner drives it and hands State snapshots to renderers.
type Game struct {
	board   Board
	current Piece
	next    Piece
	score   int
	lines   int
	status  Status
	gravity time.Duration
	elapsed time.Duration
	rng     Randomizer
}

// NewGame creates an idle game
func NewGame(config GameConfig) *Game {
	if config.Gravity <= 0 {
		config.Gravity = DefaultGravity
	}
	if config.Rand == nil {
		config.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		gravity: config.Gravity,
		rng:     config.Rand,
		status:  StatusIdle,
	}
}

// Start resets the board and score and spawns the first piece.
// It does nothing while a game is running.
func (game *Game) Start() bool {
	if game.status == StatusRunning {
		return false
	}
	game.board.Clear()
	game.score = 0
	game.lines = 0
	game.elapsed = 0
	game.status = StatusRunning
	game.next = RandomPiece(game.rng)
	game.spawn()
	return true
}

// Status returns the state machine state
func (game *Game) Status() Status {
	return game.status
}

// Score returns the current score
func (game *Game) Score() int {
	return game.score
}

// Lines returns the number of lines cleared in the current game
func (game *Game) Lines() int {
	return game.lines
}

// Gravity returns the gravity tick interval
func (game *Game) Gravity() time.Duration {
	return game.gravity
}

// State returns a snapshot of the game
func (game *Game) State() State {
	return State{
		Board:   game.board,
		Current: game.current,
		Next:    game.next,
		Score:   game.score,
		Lines:   game.lines,
		Status:  game.status,
	}
}

// Result returns the outcome of the current or last game
func (game *Game) Result() Result {
	return Result{Score: game.score, Lines: game.lines, Board: game.board}
}

// Advance adds the elapsed frame time to the gravity accumulator and fires
// at most one gravity tick once a full interval has accumulated.
// Time beyond one interval is dropped.
func (game *Game) Advance(delta time.Duration) bool {
	if game.status != StatusRunning || delta <= 0 {
		return false
	}
	game.elapsed += delta
	if game.elapsed < game.gravity {
		return false
	}
	game.elapsed %= game.gravity
	game.Tick()
	return true
}

// Tick is the gravity step. It moves the piece down and locks it when it cannot move.
// It returns true if the piece locked.
func (game *Game) Tick() bool {
	if game.status != StatusRunning {
		return false
	}
	return game.moveDown()
}

// MoveLeft moves the piece left if the column is free
func (game *Game) MoveLeft() bool {
	if game.status != StatusRunning {
		return false
	}
	return game.try(game.current.CloneMoveLeft())
}

// MoveRight moves the piece right if the column is free
func (game *Game) MoveRight() bool {
	if game.status != StatusRunning {
		return false
	}
	return game.try(game.current.CloneMoveRight())
}

// Rotate rotates the piece clockwise if the rotated shape fits
func (game *Game) Rotate() bool {
	if game.status != StatusRunning {
		return false
	}
	return game.try(game.current.CloneRotateRight())
}

// SoftDrop moves the piece down one row and locks it when it cannot move.
// It returns true if the piece locked.
func (game *Game) SoftDrop() bool {
	if game.status != StatusRunning {
		return false
	}
	return game.moveDown()
}

// HardDrop drops the piece as far as it goes and locks it.
// It returns the number of rows the piece fell.
func (game *Game) HardDrop() int {
	if game.status != StatusRunning {
		return 0
	}
	distance := 0
	for {
		mino := game.current.CloneMoveDown()
		if game.board.Collides(mino) {
			break
		}
		game.current = mino
		distance++
	}
	game.moveDown()
	return distance
}

// DropPosition returns the piece where a hard drop would leave it
func (game *Game) DropPosition() Piece {
	return dropPosition(&game.board, game.current)
}

func dropPosition(board *Board, piece Piece) Piece {
	if piece.Empty() {
		return piece
	}
	for {
		mino := piece.CloneMoveDown()
		if board.Collides(mino) {
			return piece
		}
		piece = mino
	}
}

// try commits the candidate position if it does not collide
func (game *Game) try(mino Piece) bool {
	if game.board.Collides(mino) {
		return false
	}
	game.current = mino
	return true
}

// moveDown moves the piece down one row or locks it
func (game *Game) moveDown() bool {
	if game.try(game.current.CloneMoveDown()) {
		return false
	}
	game.lock()
	return true
}

// lock merges the piece, clears full lines and spawns the next piece
func (game *Game) lock() {
	game.board.Merge(game.current)
	if lines := game.board.ClearLines(); lines > 0 {
		game.lines += lines
		game.score += ScorePerLine * lines
	}
	game.spawn()
}

// spawn promotes the preview piece and ends the game if it does not fit
func (game *Game) spawn() {
	game.current = game.next
	game.next = RandomPiece(game.rng)
	if game.board.Collides(game.current) {
		game.status = StatusGameOver
		game.elapsed = 0
	}
}
