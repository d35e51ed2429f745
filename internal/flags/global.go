package flags

import (
	"github.com/spf13/cobra"
)

// Flags shared by every command.
var (
	configPath string
	debugFlag  bool
)

func AddConfigPathFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Directory holding settings.json, scores.db and tetris.log")
}

// ConfigPath is empty unless the user picked a directory; settings then fall
// back to the user config directory.
func ConfigPath() string {
	return configPath
}

func AddDebugFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write engine and server logs to tetris.log in the config directory")
	cmd.PersistentFlags().MarkHidden("debug")
}

func Debug() bool {
	return debugFlag
}
