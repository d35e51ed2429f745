package tetris

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// ErrNotMounted is returned when the engine has no screen
var ErrNotMounted = errors.New("engine is not mounted")

// EngineConfig configures an Engine
type EngineConfig struct {
	Game GameConfig
	// FPS is the frame rate of the loop. Zero means DefaultFPS.
	FPS int
	// Ghost draws where a hard drop would land
	Ghost bool
	// Ranking is shown on the game over screen. Nil means an empty ranking.
	Ranking *Ranking
	// Logger receives lifecycle messages. Nil discards them.
	Logger *log.Logger
	// OnGameOver is called from the loop goroutine when a game ends
	OnGameOver func(Result)
}

// EventGame is an game event
type EventGame struct {
	when time.Time
}

// When returns event when
func (eventGame *EventGame) When() time.Time {
	return eventGame.when
}

// EventEngineStart asks the loop to start a new game
type EventEngineStart struct {
	EventGame
}

// EventEngineStopRun stops the run of the engine
type EventEngineStopRun struct {
	EventGame
}

// Engine hosts a Game on a terminal screen. The loop goroutine started by Run
// owns the game; other goroutines talk to it through screen events and read
// the published score and status.
type Engine struct {
	game       *Game
	view       *View
	screen     tcell.Screen
	ranking    *Ranking
	logger     *log.Logger
	onGameOver func(Result)
	frameTime  time.Duration
	ghost      bool

	paused     bool
	lastFrame  time.Time
	lastStatus Status

	focused  atomic.Bool
	score    atomic.Int64
	lines    atomic.Int64
	status   atomic.Int32
	mu       sync.Mutex
	mounted  bool
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	finiOnce sync.Once
}

// NewEngine creates an unmounted engine with an idle game
func NewEngine(config EngineConfig) *Engine {
	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}
	if config.Ranking == nil {
		config.Ranking = NewRanking(rankingSize)
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		game:       NewGame(config.Game),
		ranking:    config.Ranking,
		logger:     config.Logger,
		onGameOver: config.OnGameOver,
		frameTime:  time.Second / time.Duration(config.FPS),
		ghost:      config.Ghost,
	}
}

// Mount initializes the screen and draws the idle game. The game is not started.
func (engine *Engine) Mount(screen tcell.Screen) error {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.mounted {
		return errors.New("engine is already mounted")
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	engine.screen = screen
	engine.view = NewView(screen, engine.ghost)
	engine.mounted = true
	engine.finiOnce = sync.Once{}
	engine.publish()
	engine.render()

	engine.logger.Println("Engine Mount")
	return nil
}

// Unmount stops the loop and releases the screen. It is safe to call at any
// time, including mid-game and more than once.
func (engine *Engine) Unmount() {
	engine.mu.Lock()
	if !engine.mounted {
		engine.mu.Unlock()
		return
	}
	engine.mounted = false
	cancel, done, screen := engine.cancel, engine.done, engine.screen
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	engine.finiOnce.Do(screen.Fini)

	engine.logger.Println("Engine Unmount")
}

// Run runs the frame loop until ctx is done, the player quits or Unmount is called
func (engine *Engine) Run(ctx context.Context) error {
	engine.mu.Lock()
	if !engine.mounted {
		engine.mu.Unlock()
		return ErrNotMounted
	}
	if engine.running {
		engine.mu.Unlock()
		return errors.New("engine is already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	engine.running = true
	engine.cancel = cancel
	engine.done = make(chan struct{})
	screen, done := engine.screen, engine.done
	engine.mu.Unlock()

	defer func() {
		engine.mu.Lock()
		engine.running = false
		engine.cancel = nil
		engine.mu.Unlock()
		close(done)
	}()

	engine.logger.Println("Engine Run start")

	chanEvent := make(chan tcell.Event, 8)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			event := screen.PollEvent()
			if event == nil || gctx.Err() != nil {
				return nil
			}
			if _, ok := event.(*EventEngineStopRun); ok {
				return nil
			}
			select {
			case chanEvent <- event:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() {
			cancel()
			// wake the event goroutine blocked in PollEvent
			_ = screen.PostEvent(&EventEngineStopRun{EventGame{when: time.Now()}})
		}()

		ticker := time.NewTicker(engine.frameTime)
		defer ticker.Stop()
		engine.lastFrame = time.Time{}

		for {
			select {
			case <-gctx.Done():
				return nil
			case event := <-chanEvent:
				if !engine.handleEvent(event) {
					return nil
				}
			case now := <-ticker.C:
				engine.frame(now)
			}
		}
	})

	err := g.Wait()
	engine.logger.Println("Engine Run end")
	return err
}

// Start asks the loop to start a new game. It is the host's start and restart command.
func (engine *Engine) Start() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.mounted {
		return ErrNotMounted
	}
	return engine.screen.PostEvent(&EventEngineStart{EventGame{when: time.Now()}})
}

// Stop asks the loop to return
func (engine *Engine) Stop() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.mounted {
		return ErrNotMounted
	}
	if engine.cancel != nil {
		engine.cancel()
	}
	return nil
}

// Focus gives the engine input focus
func (engine *Engine) Focus() {
	engine.focused.Store(true)
}

// Blur takes input focus away from the engine
func (engine *Engine) Blur() {
	engine.focused.Store(false)
}

// Focused reports whether the engine reacts to game keys
func (engine *Engine) Focused() bool {
	return engine.focused.Load()
}

// Score returns the score of the current or last game
func (engine *Engine) Score() int {
	return int(engine.score.Load())
}

// Lines returns the lines cleared in the current or last game
func (engine *Engine) Lines() int {
	return int(engine.lines.Load())
}

// Status returns the game state machine state
func (engine *Engine) Status() Status {
	return Status(engine.status.Load())
}

// GameOver reports whether the last game has ended
func (engine *Engine) GameOver() bool {
	return engine.Status() == StatusGameOver
}

// frame advances gravity by the time since the last frame and redraws
func (engine *Engine) frame(now time.Time) {
	var delta time.Duration
	if !engine.lastFrame.IsZero() {
		delta = now.Sub(engine.lastFrame)
	}
	engine.lastFrame = now

	if !engine.paused {
		engine.game.Advance(delta)
		engine.afterUpdate()
	}
	engine.render()
}

// handleEvent processes one screen event. It returns false when the loop should stop.
func (engine *Engine) handleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventKey:
		if !engine.ProcessEventKey(event) {
			return false
		}
	case *tcell.EventFocus:
		engine.focused.Store(event.Focused)
	case *tcell.EventResize:
		engine.screen.Sync()
	case *EventEngineStart:
		engine.NewGame()
	case *EventEngineStopRun:
		return false
	default:
		engine.logger.Printf("event type %T", event)
	}
	engine.render()
	return true
}

// NewGame starts a game if none is running
func (engine *Engine) NewGame() {
	if !engine.game.Start() {
		return
	}
	engine.logger.Println("Engine NewGame")
	engine.paused = false
	engine.afterUpdate()
}

// Pause suspends gravity and input
func (engine *Engine) Pause() {
	if engine.game.Status() != StatusRunning {
		return
	}
	engine.paused = true
}

// UnPause resumes the game
func (engine *Engine) UnPause() {
	engine.paused = false
}

// afterUpdate publishes the game state and reports a finished game once
func (engine *Engine) afterUpdate() {
	status := engine.game.Status()
	if status == StatusGameOver && engine.lastStatus != StatusGameOver {
		engine.gameOver()
	}
	engine.lastStatus = status
	engine.publish()
}

// gameOver records the finished game
func (engine *Engine) gameOver() {
	result := engine.game.Result()
	engine.paused = false
	engine.logger.Printf("Engine GameOver score %d lines %d", result.Score, result.Lines)

	engine.ranking.InsertScore(result.Score)
	if engine.onGameOver != nil {
		engine.onGameOver(result)
	}
}

// publish stores the values other goroutines may read
func (engine *Engine) publish() {
	engine.score.Store(int64(engine.game.Score()))
	engine.lines.Store(int64(engine.game.Lines()))
	engine.status.Store(int32(engine.game.Status()))
}

// render draws the current snapshot
func (engine *Engine) render() {
	if engine.view == nil {
		return
	}
	engine.view.Render(Frame{
		State:   engine.game.State(),
		Focused: engine.focused.Load(),
		Paused:  engine.paused,
		Ranking: engine.ranking.Scores(),
	})
}
