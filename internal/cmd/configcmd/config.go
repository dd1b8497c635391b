// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/config"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mdb configuration",
		Long:  `Commands for viewing, validating, and clearing mdb configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdTest())
	cmd.AddCommand(NewCmdSetFormat())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// configPath returns the file named by the global --config flag, or the
// default location.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return config.PathOrDefault(path)
}
