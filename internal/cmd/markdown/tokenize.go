package markdown

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/view"
)

type tokenizeOptions struct {
	input
	output   string
	codeOnly bool
}

// NewCmdTokenize creates the tokenize command.
func NewCmdTokenize() *cobra.Command {
	opts := &tokenizeOptions{}

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Split a markdown document into block tokens",
		Long: `Split a markdown document into block tokens: headings, paragraphs,
lists, code blocks, blockquotes, and rules.

Unfenced JSON and YAML are detected and emitted as code blocks. Reads
standard input when no file is given.`,
		Example: `  # Summarize the blocks of a file
  mdb tokenize README.md

  # Emit the token JSON
  mdb tokenize README.md -o json

  # Tokenize an HTML export
  mdb tokenize page.html --html

  # List only the code blocks, fenced or detected
  mdb tokenize README.md --code`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bind(cmd, args)
			if cmd.Flags().Changed("output") {
				opts.output, _ = cmd.Flags().GetString("output")
			}
			return runTokenize(opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.codeOnly, "code", false, "Only list top-level code blocks")

	return cmd
}

func runTokenize(opts *tokenizeOptions) error {
	cfg := opts.loadConfig()

	output := opts.output
	if output == "" {
		output = cfg.OutputFormat
	}
	if output == "" {
		output = string(view.FormatTable)
	}
	if err := view.ValidateFormat(output); err != nil {
		return err
	}

	result, err := opts.tokenize()
	if err != nil {
		return err
	}

	tokens := result.Tokens
	if opts.codeOnly {
		tokens = result.CodeBlocks()
	}

	renderer := view.NewRenderer(view.Format(output), opts.noColor)
	renderer.SetWriter(opts.out())
	if err := renderer.RenderTokens(tokens); err != nil {
		return err
	}

	warnings := view.NewRenderer(view.FormatPlain, opts.noColor)
	warnings.SetWriter(opts.errOut())
	warnings.RenderWarnings(result.Warnings)
	return nil
}
