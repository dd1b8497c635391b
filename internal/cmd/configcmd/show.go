package configcmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current mdb configuration with source indicators.`,
		Example: `  # Show current config
  mdb config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(configPath(cmd), noColor)
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar, fallback string) {
		_, _ = bold.Printf("%-12s", label+":")
		if value == "" {
			if fallback != "" {
				fmt.Print(fallback)
				_, _ = dim.Println("  (source: default)")
				return
			}
			_, _ = dim.Println("-")
			return
		}

		fmt.Print(value)

		source := "config"
		if v := os.Getenv(envVar); v != "" && v == value {
			source = envVar
		} else if fileErr != nil || fileValue != value {
			source = "-"
		}

		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Format", cfg.PreferredFormat, fileCfg.PreferredFormat, "MDB_PREFERRED_FORMAT", "")
	printField("Theme", cfg.Theme, fileCfg.Theme, "MDB_THEME", cfg.ThemeOrDefault())
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "MDB_OUTPUT", "table")

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}
