// Package root provides the root command for the mdb CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/cmd/completion"
	"github.com/open-cli-collective/mdblock/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/mdblock/internal/cmd/init"
	"github.com/open-cli-collective/mdblock/internal/cmd/islandcmd"
	"github.com/open-cli-collective/mdblock/internal/cmd/markdown"
	"github.com/open-cli-collective/mdblock/internal/version"
)

// NewCmdRoot creates the root command for mdb.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdb",
		Short: "A block-level markdown tokenizer with code island editing",
		Long: `mdb splits markdown into block tokens, detecting unfenced JSON and YAML
as code blocks, and renders or normalizes the result.

It also runs the code island state machine over HTML documents, turning
blocks into non-editable code regions and back.

Get started by running: mdb init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mdb/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("mdb version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(markdown.NewCmdTokenize())
	cmd.AddCommand(markdown.NewCmdRender())
	cmd.AddCommand(markdown.NewCmdFmt())
	cmd.AddCommand(islandcmd.NewCmdIsland())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
