package markdown

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/pkg/md"
)

type renderOptions struct {
	input
	theme       string
	noHighlight bool
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a markdown document as HTML",
		Long: `Render a markdown document as an HTML fragment.

Code blocks, including detected JSON and YAML, are highlighted with the
configured theme and wrapped in a div carrying their language.`,
		Example: `  # Render with the configured theme
  mdb render README.md > readme.html

  # Pick a theme, or skip highlighting
  mdb render README.md --theme github
  mdb render README.md --no-highlight`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bind(cmd, args)
			return runRender(opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Highlighting theme (default from config)")
	cmd.Flags().BoolVar(&opts.noHighlight, "no-highlight", false, "Emit plain <pre><code> blocks")

	return cmd
}

func runRender(opts *renderOptions) error {
	cfg := opts.loadConfig()

	theme := opts.theme
	if theme == "" {
		theme = cfg.ThemeOrDefault()
	}
	if !md.ThemeExists(theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}

	result, err := opts.tokenize()
	if err != nil {
		return err
	}

	html, err := md.RenderHTML(result.Tokens, md.HTMLOptions{
		Highlight: !opts.noHighlight,
		Theme:     theme,
	})
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	_, err = fmt.Fprint(opts.out(), html)
	return err
}
