package cmd

import (
	"fmt"

	"github.com/blockfolio/tetris-cli/internal"
	"github.com/blockfolio/tetris-cli/internal/settings"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your CLI configuration",
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Set a configuration value",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: configKeyArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := readSettings()
		if err != nil {
			return err
		}

		if err := s.Set(args[0], args[1]); err != nil {
			return err
		}
		value, err := s.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", args[0], internal.Emph(value))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print a configuration value",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: configKeyArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := readSettings()
		if err != nil {
			return err
		}

		value, err := s.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:               "list",
	Short:             "List every configuration value",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		s, err := readSettings()
		if err != nil {
			return err
		}

		all := s.All()
		data := make([][]string, 0, len(all))
		for _, key := range settings.Keys() {
			data = append(data, []string{key, all[key]})
		}
		printTable(cmd.OutOrStdout(), []string{"key", "value"}, data)
		fmt.Fprintf(cmd.OutOrStdout(), "\nSettings are stored in %s\n", internal.Emph(s.Dir()))
		return nil
	},
}
