package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/blockfolio/tetris-cli/internal/flags"
	"github.com/blockfolio/tetris-cli/internal/leaderboard"
	"github.com/blockfolio/tetris-cli/internal/logging"
	"github.com/blockfolio/tetris-cli/internal/settings"
	"github.com/blockfolio/tetris-cli/internal/tetris"
	"github.com/olekukonko/tablewriter"
)

func readSettings() (*settings.Settings, error) {
	s, err := settings.ReadSettings(flags.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("could not retrieve local config: %w", err)
	}
	return s, nil
}

func openLeaderboard(ctx context.Context, s *settings.Settings) (*leaderboard.Store, error) {
	config, err := s.Config()
	if err != nil {
		return nil, err
	}
	return leaderboard.Open(ctx, config.ScoresDB)
}

func newLogger(s *settings.Settings) (*log.Logger, io.Closer, error) {
	logger, closer, err := logging.New(flags.Debug(), s.Dir())
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	return logger, closer, nil
}

func printTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}

// boardText draws a board with one letter per tetromino kind
func boardText(board tetris.Board) string {
	var sb strings.Builder
	for y := 0; y < tetris.Rows; y++ {
		sb.WriteString("|")
		for x := 0; x < tetris.Cols; x++ {
			kind := board[y][x]
			if kind == tetris.KindNone {
				sb.WriteString(" .")
				continue
			}
			sb.WriteString(" " + kind.String())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("+" + strings.Repeat("--", tetris.Cols) + "-+\n")
	return sb.String()
}
