package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/blockfolio/tetris-cli/internal"
	"github.com/blockfolio/tetris-cli/internal/flags"
	"github.com/blockfolio/tetris-cli/internal/leaderboard"
	"github.com/blockfolio/tetris-cli/internal/prompt"
	"github.com/blockfolio/tetris-cli/internal/server"
	tbl "github.com/charmbracelet/bubbles/table"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/pkg/browser"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

const pickerLimit = 50

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.AddCommand(scoresListCmd)
	scoresCmd.AddCommand(scoresShowCmd)
	scoresCmd.AddCommand(scoresResetCmd)
	scoresCmd.AddCommand(scoresServeCmd)

	flags.AddLimit(scoresListCmd, server.DefaultLimit)
	flags.AddJSON(scoresListCmd)
	flags.AddYes(scoresResetCmd, "Confirms deleting every score")
	flags.AddAddr(scoresServeCmd)
	flags.AddOpen(scoresServeCmd)
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Manage the leaderboard",
}

var scoresListCmd = &cobra.Command{
	Use:               "list",
	Short:             "List the best scores",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()
		store, err := openStoreFromSettings(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Top(ctx, flags.Limit())
		if err != nil {
			return err
		}

		if flags.JSON() {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No scores yet. Start a game with %s\n", internal.Emph("tetris play"))
			return nil
		}

		tb := table.New("#", "ID", "PLAYER", "SCORE", "LINES", "PLAYED").WithWriter(cmd.OutOrStdout())
		columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
		tb.WithFirstColumnFormatter(columnFmt)
		for i, entry := range entries {
			tb.AddRow(i+1, entry.ID, entry.Player, humanize.Comma(int64(entry.Score)), entry.Lines, humanize.Time(entry.PlayedAt))
		}
		tb.Print()
		return nil
	},
}

var scoresShowCmd = &cobra.Command{
	Use:               "show [id]",
	Short:             "Show a game and its final board",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()
		store, err := openStoreFromSettings(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		id := ""
		if len(args) > 0 {
			id = args[0]
		} else {
			id, err = pickScore(ctx, store)
			if err != nil || id == "" {
				return err
			}
		}

		entry, err := store.Get(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tb := table.New("", "").WithWriter(out)
		tb.WithFirstColumnFormatter(color.New(color.FgBlue, color.Bold).SprintfFunc())
		tb.AddRow("id", entry.ID)
		tb.AddRow("player", entry.Player)
		tb.AddRow("score", humanize.Comma(int64(entry.Score)))
		tb.AddRow("lines", entry.Lines)
		tb.AddRow("played", fmt.Sprintf("%s (%s)", entry.PlayedAt.Local().Format(time.RFC1123), humanize.Time(entry.PlayedAt)))
		tb.Print()
		fmt.Fprintln(out)
		fmt.Fprint(out, boardText(entry.Board))
		return nil
	},
}

// pickScore lets the user choose a game from the leaderboard
func pickScore(ctx context.Context, store *leaderboard.Store) (string, error) {
	if !prompt.IsInteractive() {
		return "", errors.New("missing score id. List ids with tetris scores list")
	}
	entries, err := store.Top(ctx, pickerLimit)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", errors.New("no scores yet")
	}

	columns := []tbl.Column{
		{Title: "ID", Width: 36},
		{Title: "PLAYER", Width: 16},
		{Title: "SCORE", Width: 8},
		{Title: "PLAYED", Width: 16},
	}
	rows := make([]tbl.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, tbl.Row{entry.ID, entry.Player, strconv.Itoa(entry.Score), humanize.Time(entry.PlayedAt)})
	}
	return prompt.Table(columns, rows)
}

var scoresResetCmd = &cobra.Command{
	Use:               "reset",
	Short:             "Delete every score",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := cmd.Context()
		store, err := openStoreFromSettings(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if !flags.Yes() {
			count, err := store.Count(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s scores will be deleted from %s.\n", internal.Warn(count), internal.Emph(store.Path()))

			ok, err := prompt.Confirm("Are you sure you want to do this")
			if err != nil {
				return fmt.Errorf("could not get prompt confirmed by user: %w", err)
			}
			if !ok {
				fmt.Fprintln(out, "Scores kept. Use --yes to reset without a prompt.")
				return nil
			}
		}

		deleted, err := store.Reset(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %s scores.\n", internal.Emph(deleted))
		return nil
	},
}

var scoresServeCmd = &cobra.Command{
	Use:               "serve",
	Short:             "Serve the leaderboard over HTTP",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := readSettings()
		if err != nil {
			return err
		}
		logger, closer, err := newLogger(s)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		store, err := openLeaderboard(ctx, s)
		if err != nil {
			return err
		}
		defer store.Close()

		gin.SetMode(gin.ReleaseMode)
		router := server.New(store, logger)

		var spinner *prompt.SpinnerT
		err = server.Run(ctx, flags.Addr(), router, func(addr net.Addr) {
			url := server.URL(addr)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving the leaderboard on %s\n", internal.Emph(url))
			if flags.Open() {
				if err := browser.OpenURL(url); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Could not open a browser: %s\n", internal.Warn(err))
				}
			}
			spinner = prompt.Spinner("Press ctrl+c to stop", cancel)
		})
		if spinner != nil {
			spinner.Stop()
		}
		return err
	},
}

func openStoreFromSettings(ctx context.Context) (*leaderboard.Store, error) {
	s, err := readSettings()
	if err != nil {
		return nil, err
	}
	return openLeaderboard(ctx, s)
}
