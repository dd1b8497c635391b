package markdown

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/view"
	"github.com/open-cli-collective/mdblock/pkg/md"
)

type fmtOptions struct {
	input
	write bool
}

// NewCmdFmt creates the fmt command.
func NewCmdFmt() *cobra.Command {
	opts := &fmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Normalize a markdown document",
		Long: `Rewrite a markdown document from its tokens: one blank line between
blocks, "-" bullets, renumbered ordered lists, and fenced code.

Detected JSON and YAML stay unfenced so the output tokenizes the same way.`,
		Example: `  # Print the normalized document
  mdb fmt notes.md

  # Rewrite the file in place, converting detected data to YAML
  mdb fmt notes.md --format yaml --write`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bind(cmd, args)
			return runFmt(opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the result back to the file")

	return cmd
}

func runFmt(opts *fmtOptions) error {
	if opts.write && (opts.file == "" || opts.file == "-") {
		return fmt.Errorf("--write needs a file argument")
	}

	result, err := opts.tokenize()
	if err != nil {
		return err
	}
	out := md.Serialize(result.Tokens) + "\n"

	warnings := view.NewRenderer(view.FormatPlain, opts.noColor)
	warnings.SetWriter(opts.errOut())
	warnings.RenderWarnings(result.Warnings)

	if !opts.write {
		_, err = fmt.Fprint(opts.out(), out)
		return err
	}

	info, err := os.Stat(opts.file)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if err := os.WriteFile(opts.file, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	renderer.SetWriter(opts.out())
	renderer.Success(fmt.Sprintf("Formatted %s", opts.file))
	return nil
}
