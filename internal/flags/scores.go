package flags

import (
	"github.com/spf13/cobra"
)

var (
	limitFlag int
	jsonFlag  bool
	addrFlag  string
	openFlag  bool
	yesFlag   bool
)

func AddLimit(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", defaultLimit, "Number of scores to show")
}

func Limit() int {
	return limitFlag
}

func AddJSON(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the scores as JSON")
}

func JSON() bool {
	return jsonFlag
}

func AddAddr(cmd *cobra.Command) {
	cmd.Flags().StringVar(&addrFlag, "addr", ":8080", "Address the leaderboard server listens on")
}

func Addr() string {
	return addrFlag
}

func AddOpen(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&openFlag, "open", false, "Open the leaderboard in a browser")
}

func Open() bool {
	return openFlag
}

// AddYes skips the confirmation of a destructive command
func AddYes(cmd *cobra.Command, desc string) {
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, desc)
}

func Yes() bool {
	return yesFlag
}
