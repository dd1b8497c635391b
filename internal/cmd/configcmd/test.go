package configcmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/config"
	"github.com/open-cli-collective/mdblock/pkg/md"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Validate the current configuration",
		Long:  `Check that the configured format, theme, and output settings are known to mdb.`,
		Example: `  # Validate config
  mdb config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(configPath(cmd), noColor)
		},
	}

	return cmd
}

func runTest(path string, noColor bool, cfgs ...*config.Config) error {
	if noColor {
		color.NoColor = true
	}

	var cfg *config.Config
	if len(cfgs) > 0 && cfgs[0] != nil {
		cfg = cfgs[0]
	} else {
		var err error
		cfg, err = config.LoadWithEnv(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'mdb init' to configure)", err)
		}
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if err := cfg.Validate(); err != nil {
		red.Println("✗ Invalid configuration:", err)
		fmt.Println("\nCheck your settings with: mdb config show")
		fmt.Println("Reconfigure with: mdb init")
		return fmt.Errorf("invalid config: %w", err)
	}

	green.Println("✓ Configuration is valid")

	// Render a sample so a broken theme shows up here rather than mid-command.
	if _, err := md.RenderHTML(md.Tokenize("```go\nx := 1\n```"), md.HTMLOptions{
		Highlight: true,
		Theme:     cfg.ThemeOrDefault(),
	}); err != nil {
		red.Println("✗ Highlighting failed:", err)
		return fmt.Errorf("highlighting failed: %w", err)
	}
	green.Printf("✓ Theme %s renders\n", cfg.ThemeOrDefault())

	return nil
}
