// Package server exposes the leaderboard over HTTP.
package server

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/blockfolio/tetris-cli/internal/leaderboard"
	"github.com/blockfolio/tetris-cli/internal/tetris"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

//go:embed index.html
var indexHTML string

const (
	DefaultLimit = 10
	MaxLimit     = 100
	maxCellSize  = 64
)

const shutdownTimeout = 5 * time.Second

// Scores is the part of the leaderboard the server reads
type Scores interface {
	Top(ctx context.Context, limit int) ([]leaderboard.Entry, error)
	Get(ctx context.Context, id string) (leaderboard.Entry, error)
	Count(ctx context.Context) (int, error)
}

type scoreResponse struct {
	ID       string    `json:"id"`
	Player   string    `json:"player"`
	Score    int       `json:"score"`
	Lines    int       `json:"lines"`
	PlayedAt time.Time `json:"played_at"`
	Board    []string  `json:"board,omitempty"`
}

func newScoreResponse(entry leaderboard.Entry, withBoard bool) scoreResponse {
	response := scoreResponse{
		ID:       entry.ID,
		Player:   entry.Player,
		Score:    entry.Score,
		Lines:    entry.Lines,
		PlayedAt: entry.PlayedAt,
	}
	if withBoard {
		response.Board = strings.Split(entry.Board.String(), "\n")
	}
	return response
}

type handler struct {
	scores Scores
	logger *log.Logger
}

// New builds the leaderboard router. Request logs go to logger.
func New(scores Scores, logger *log.Logger) *gin.Engine {
	h := &handler{scores: scores, logger: logger}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.New("index").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).Parse(indexHTML)))

	router.GET("/", h.index)
	router.GET("/healthz", h.health)
	router.GET("/scores", h.listScores)
	router.GET("/scores/:id", h.getScore)
	router.GET("/scores/:id/board.png", h.getBoard)
	return router
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) index(c *gin.Context) {
	entries, err := h.scores.Top(c.Request.Context(), DefaultLimit)
	if err != nil {
		h.fail(c, err)
		return
	}
	count, err := h.scores.Count(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index", gin.H{"Scores": entries, "Count": count})
}

func (h *handler) listScores(c *gin.Context) {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries, err := h.scores.Top(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	response := make([]scoreResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, newScoreResponse(entry, false))
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) getScore(c *gin.Context) {
	entry, err := h.scores.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newScoreResponse(entry, true))
}

func (h *handler) getBoard(c *gin.Context) {
	cellSize := tetris.DefaultCellSize
	if raw := c.Query("cell"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 2 || size > maxCellSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("cell must be between 2 and %d", maxCellSize)})
			return
		}
		cellSize = size
	}

	entry, err := h.scores.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := tetris.RenderPNG(c.Writer, entry.Board, cellSize); err != nil {
		h.logger.Printf("could not render board %s: %v", entry.ID, err)
	}
}

func (h *handler) fail(c *gin.Context, err error) {
	if errors.Is(err, leaderboard.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": leaderboard.ErrNotFound.Error()})
		return
	}
	h.logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseLimit reads the limit query value. Empty means DefaultLimit and
// values above MaxLimit are clamped.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return DefaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("limit must be a positive number, got %q", raw)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit, nil
}

// Run serves handler on addr until ctx is done, then shuts the server down.
// onListen is called with the bound address once the listener is open.
func Run(ctx context.Context, addr string, handler http.Handler, onListen func(net.Addr)) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", addr, err)
	}
	server := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	if onListen != nil {
		onListen(listener.Addr())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// URL returns the address a browser can open for addr
func URL(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok || tcp.IP.IsUnspecified() {
		port := 0
		if ok {
			port = tcp.Port
		}
		return fmt.Sprintf("http://localhost:%d", port)
	}
	return "http://" + tcp.String()
}
