// Package init provides the init command for mdb.
package init

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/config"
	"github.com/open-cli-collective/mdblock/pkg/md"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		format string
		theme  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdb configuration",
		Long: `Initialize mdb with your preferred settings.

This command will guide you through choosing the format auto-detected
JSON and YAML blocks are rewritten to, the highlighting theme used by
"mdb render", and the default output format. The configuration will be
saved to ~/.config/mdb/config.yml, or to the file named by --config.`,
		Example: `  # Interactive setup
  mdb init

  # Pre-select YAML and a theme
  mdb init --format yaml --theme dracula`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			return runInit(config.PathOrDefault(path), format, theme)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "preferred structured-data format (json, yaml)")
	cmd.Flags().StringVar(&theme, "theme", "", "highlighting theme")

	return cmd
}

func runInit(configPath, prefillFormat, prefillTheme string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := newConfig(prefillFormat, prefillTheme)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preferred format").
				Description("Detected JSON and YAML blocks are rewritten to this format").
				Options(
					huh.NewOption("Keep as written", ""),
					huh.NewOption("JSON", md.LanguageJSON),
					huh.NewOption("YAML", md.LanguageYAML),
				).
				Value(&cfg.PreferredFormat),

			huh.NewSelect[string]().
				Title("Theme").
				Description("Syntax highlighting style for mdb render").
				Options(huh.NewOptions(md.ThemeNames()...)...).
				Height(8).
				Value(&cfg.Theme),

			huh.NewSelect[string]().
				Title("Output").
				Description("Default output format for mdb tokenize").
				Options(huh.NewOptions("table", "json", "plain")...).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := saveConfig(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  mdb tokenize README.md")
	fmt.Println("  mdb render README.md > out.html")

	return nil
}

// newConfig returns the form's starting values.
func newConfig(format, theme string) *config.Config {
	cfg := &config.Config{
		PreferredFormat: format,
		Theme:           theme,
		OutputFormat:    "table",
	}
	if cfg.Theme == "" {
		cfg.Theme = md.DefaultTheme
	}
	return cfg
}

func saveConfig(cfg *config.Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg.Save(path)
}
