// Package leaderboard persists finished games in a sqlite database.
package leaderboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blockfolio/tetris-cli/internal/tetris"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// DefaultPlayer is stored for games without a player name
const DefaultPlayer = "anonymous"

// ErrNotFound is returned when no score has the requested id
var ErrNotFound = errors.New("score not found")

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id        TEXT PRIMARY KEY,
	player    TEXT NOT NULL,
	score     INTEGER NOT NULL,
	lines     INTEGER NOT NULL,
	board     TEXT NOT NULL,
	played_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS scores_rank ON scores (score DESC, played_at ASC);
`

const selectColumns = "id, player, score, lines, board, played_at"

// Entry is one finished game
type Entry struct {
	ID       string       `json:"id"`
	Player   string       `json:"player"`
	Score    int          `json:"score"`
	Lines    int          `json:"lines"`
	Board    tetris.Board `json:"-"`
	PlayedAt time.Time    `json:"played_at"`
}

// NewEntry builds an entry from a game result
func NewEntry(player string, result tetris.Result) Entry {
	return Entry{
		Player: player,
		Score:  result.Score,
		Lines:  result.Lines,
		Board:  result.Board,
	}
}

// Store is a sqlite backed leaderboard. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database at path, creating it and its directory if needed
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("scores database path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("could not create scores directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("could not open scores database %s: %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	store := &Store{db: db, path: path}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("could not configure scores database: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("could not migrate scores database: %w", err)
	}
	return nil
}

// Path returns the database file
func (s *Store) Path() string {
	return s.path
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores a finished game. It assigns an id when ID is empty and the
// current time when PlayedAt is zero, and returns the stored entry.
func (s *Store) Insert(ctx context.Context, entry Entry) (Entry, error) {
	if entry.Score < 0 || entry.Lines < 0 {
		return Entry{}, fmt.Errorf("invalid score %d with %d lines", entry.Score, entry.Lines)
	}
	entry.Player = strings.TrimSpace(entry.Player)
	if entry.Player == "" {
		entry.Player = DefaultPlayer
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.PlayedAt.IsZero() {
		entry.PlayedAt = time.Now()
	}
	entry.PlayedAt = entry.PlayedAt.UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores ("+selectColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		entry.ID, entry.Player, entry.Score, entry.Lines, entry.Board.String(), entry.PlayedAt.UnixNano(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("could not save score: %w", err)
	}
	return entry, nil
}

// Top returns the best limit scores, highest first. Ties go to the earlier game.
// A limit of zero or less returns every score.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM scores ORDER BY score DESC, played_at ASC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("could not list scores: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list scores: %w", err)
	}
	return entries, nil
}

// Get returns the score with id
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM scores WHERE id = ?", id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entry, err
}

// Best returns the best score of player
func (s *Store) Best(ctx context.Context, player string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM scores WHERE player = ? ORDER BY score DESC, played_at ASC LIMIT 1", player)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: no games by %s", ErrNotFound, player)
	}
	return entry, err
}

// Count returns the number of stored games
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM scores").Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count scores: %w", err)
	}
	return count, nil
}

// Reset deletes every score and returns how many were deleted
func (s *Store) Reset(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM scores")
	if err != nil {
		return 0, fmt.Errorf("could not reset scores: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		entry    Entry
		board    string
		playedAt int64
	)
	err := row.Scan(&entry.ID, &entry.Player, &entry.Score, &entry.Lines, &board, &playedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, err
	}
	if err != nil {
		return Entry{}, fmt.Errorf("could not read score: %w", err)
	}
	entry.Board, err = tetris.ParseBoard(board)
	if err != nil {
		return Entry{}, fmt.Errorf("score %s: %w", entry.ID, err)
	}
	entry.PlayedAt = time.Unix(0, playedAt).UTC()
	return entry, nil
}
