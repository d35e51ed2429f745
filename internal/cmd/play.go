package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/athoscouto/codename"
	"github.com/blockfolio/tetris-cli/internal"
	"github.com/blockfolio/tetris-cli/internal/flags"
	"github.com/blockfolio/tetris-cli/internal/leaderboard"
	"github.com/blockfolio/tetris-cli/internal/prompt"
	"github.com/blockfolio/tetris-cli/internal/settings"
	"github.com/blockfolio/tetris-cli/internal/tetris"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
	flags.AddSeed(playCmd)
}

var playCmd = &cobra.Command{
	Use:               "play",
	Aliases:           []string{"relax"},
	Short:             "Play Tetris. Every finished game goes to the leaderboard.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()

		s, err := readSettings()
		if err != nil {
			return err
		}
		config, err := s.Config()
		if err != nil {
			return err
		}
		player, err := playerName(s)
		if err != nil {
			return err
		}

		logger, closer, err := newLogger(s)
		if err != nil {
			return err
		}
		defer closer.Close()

		store, err := leaderboard.Open(ctx, config.ScoresDB)
		if err != nil {
			return err
		}
		defer store.Close()

		ranking, err := loadRanking(ctx, store)
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("could not open terminal: %w", err)
		}

		session := newSession(ctx, store, player, logger)
		_, err = tetris.Play(ctx, screen, tetris.EngineConfig{
			Game: tetris.GameConfig{
				Gravity: config.Gravity,
				Rand:    newRand(flags.Seed()),
			},
			FPS:        config.FPS,
			Ghost:      config.Ghost,
			Ranking:    ranking,
			Logger:     logger,
			OnGameOver: session.record,
		})
		if err != nil {
			return err
		}

		best, err := personalBest(ctx, store, player)
		if err != nil {
			return err
		}
		session.printSummary(cmd.OutOrStdout(), best)
		return session.err
	},
}

// playerName returns the saved player name. The first time it asks for one,
// suggesting a generated name, and saves the answer.
func playerName(s *settings.Settings) (string, error) {
	if name := s.GetPlayer(); name != "" {
		return name, nil
	}

	suggestion, err := suggestPlayerName()
	if err != nil {
		return "", err
	}
	name := suggestion
	if prompt.IsInteractive() {
		name, err = prompt.TextInput("Pick a player name for the leaderboard", suggestion, "", settings.MaxPlayerLength, settings.ValidatePlayer)
		if err != nil {
			return "", err
		}
	}
	if err := s.SetPlayer(name); err != nil {
		return "", err
	}
	return name, nil
}

// personalBest returns the best game of player, or an empty entry when the
// player has not finished a game yet
func personalBest(ctx context.Context, store *leaderboard.Store, player string) (leaderboard.Entry, error) {
	best, err := store.Best(ctx, player)
	if errors.Is(err, leaderboard.ErrNotFound) {
		return leaderboard.Entry{}, nil
	}
	if err != nil {
		return leaderboard.Entry{}, fmt.Errorf("could not read the best score of %s: %w", player, err)
	}
	return best, nil
}

func suggestPlayerName() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	name := codename.Generate(rng, 0)
	if len(name) > settings.MaxPlayerLength {
		name = strings.TrimRight(name[:settings.MaxPlayerLength], "-")
	}
	return name, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func loadRanking(ctx context.Context, store *leaderboard.Store) (*tetris.Ranking, error) {
	ranking := tetris.NewRanking(0)
	top, err := store.Top(ctx, len(ranking.Scores()))
	if err != nil {
		return nil, err
	}
	scores := make([]int, 0, len(top))
	for _, entry := range top {
		scores = append(scores, entry.Score)
	}
	ranking.Load(scores)
	return ranking, nil
}

// session collects the games of one play command. record runs on the engine
// loop goroutine; the summary is read after the engine stopped.
type session struct {
	ctx    context.Context
	store  *leaderboard.Store
	player string
	logger *log.Logger
	games  []leaderboard.Entry
	err    error
}

func newSession(ctx context.Context, store *leaderboard.Store, player string, logger *log.Logger) *session {
	return &session{ctx: ctx, store: store, player: player, logger: logger}
}

func (s *session) record(result tetris.Result) {
	entry, err := s.store.Insert(s.ctx, leaderboard.NewEntry(s.player, result))
	if err != nil {
		s.logger.Printf("could not record game: %v", err)
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.logger.Printf("recorded game %s score %d", entry.ID, entry.Score)
	s.games = append(s.games, entry)
}

func (s *session) best() (leaderboard.Entry, bool) {
	var best leaderboard.Entry
	for i, game := range s.games {
		if i == 0 || game.Score > best.Score {
			best = game
		}
	}
	return best, len(s.games) > 0
}

func (s *session) printSummary(w io.Writer, personalBest leaderboard.Entry) {
	best, ok := s.best()
	if !ok {
		fmt.Fprintf(w, "No finished games this time, %s.\n", internal.Emph(s.player))
		return
	}

	fmt.Fprintf(w, "Thanks for playing, %s!\n", internal.Emph(s.player))
	fmt.Fprintf(w, "Games finished: %d\n", len(s.games))
	fmt.Fprintf(w, "Best this session: %s points, %d lines\n", internal.Emph(best.Score), best.Lines)
	if best.ID == personalBest.ID && best.Score > 0 {
		fmt.Fprintln(w, internal.Highlight("New personal best!"))
	} else if personalBest.ID != "" {
		fmt.Fprintf(w, "Personal best: %d points\n", personalBest.Score)
	}
	fmt.Fprintf(w, "See the leaderboard with %s\n", internal.Emph("tetris scores list"))
}
