package flags

import (
	"github.com/spf13/cobra"
)

var seedFlag int64

func AddSeed(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "Seed for the piece sequence. Zero picks a random seed.")
}

func Seed() int64 {
	return seedFlag
}
