package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/blockfolio/tetris-cli/internal/flags"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X github.com/blockfolio/tetris-cli/internal/cmd.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "tetris",
	Version: version,
	Short:   "Tetris in your terminal",
	Long:    "Play Tetris in your terminal and keep your scores in a local leaderboard.",
}

func init() {
	flags.AddConfigPathFlag(rootCmd)
	flags.AddDebugFlag(rootCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
