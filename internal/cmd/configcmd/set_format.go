package configcmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/config"
	"github.com/open-cli-collective/mdblock/pkg/md"
)

// NewCmdSetFormat creates the config set-format command.
func NewCmdSetFormat() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-format <json|yaml|none>",
		Short: "Set the preferred structured-data format",
		Long: `Set the format that auto-detected JSON and YAML blocks are rewritten to
when tokenizing. Use "none" to keep blocks in the format they were written in.`,
		Example: `  # Rewrite detected structured data as YAML
  mdb config set-format yaml

  # Stop rewriting
  mdb config set-format none`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{md.LanguageJSON, md.LanguageYAML, "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runSetFormat(configPath(cmd), args[0], noColor)
		},
	}

	return cmd
}

func runSetFormat(path, format string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	prefs := config.NewPreferences(path)
	green := color.New(color.FgGreen)

	if format == "none" {
		prefs.Delete(config.PreferredFormatKey)
		_, _ = green.Println("✓ Preferred format cleared")
		return nil
	}
	if !md.ValidFormat(format) {
		return fmt.Errorf("invalid format %q: must be json, yaml or none", format)
	}

	prefs.Set(config.PreferredFormatKey, format)
	_, _ = green.Printf("✓ Preferred format set to %s\n", format)
	return nil
}
