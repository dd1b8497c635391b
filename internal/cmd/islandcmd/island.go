// Package islandcmd provides commands that run the code island state machine
// over an HTML document.
package islandcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/view"
	"github.com/open-cli-collective/mdblock/pkg/island"
)

type islandOptions struct {
	file     string
	block    int
	uuids    bool
	language string
	output   string
	noColor  bool
	stdout   io.Writer
}

// NewCmdIsland creates the island command.
func NewCmdIsland() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "island",
		Short: "Convert blocks of an HTML document to and from code islands",
		Long: `Run the code island state machine on an HTML document.

A code island is a non-editable div carrying data-code-block-id, with a
code-block-mount child the code view is drawn into. Each command loads the
document, mounts the islands already present, applies one edit to the
top-level block selected with --block, and prints the resulting HTML.`,
	}

	cmd.AddCommand(newCmdToggle())
	cmd.AddCommand(newCmdFence())

	return cmd
}

func newCmdToggle() *cobra.Command {
	opts := &islandOptions{}
	cmd := &cobra.Command{
		Use:   "toggle <file.html>",
		Short: "Toggle a block between text and code island",
		Example: `  # Turn the second block into a code island
  mdb island toggle doc.html --block 1

  # ...and mark it as Go
  mdb island toggle doc.html --block 1 --language go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bind(cmd, args)
			return runIsland(opts, (*island.Editor).Toggle)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func newCmdFence() *cobra.Command {
	opts := &islandOptions{}
	cmd := &cobra.Command{
		Use:   "fence <file.html>",
		Short: "Convert a block holding an opening code fence into a code island",
		Example: "  # Block 0 contains \"```go\"\n  mdb island fence doc.html --block 0",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.bind(cmd, args)
			return runIsland(opts, (*island.Editor).DetectFencePattern)
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func (o *islandOptions) bind(cmd *cobra.Command, args []string) {
	o.file = args[0]
	o.output, _ = cmd.Flags().GetString("output")
	o.noColor, _ = cmd.Flags().GetBool("no-color")
	o.stdout = cmd.OutOrStdout()
}

func (o *islandOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.block, "block", "b", 0, "Index of the top-level block to edit")
	cmd.Flags().BoolVar(&o.uuids, "uuid", false, "Use random UUIDs for new island ids")
	cmd.Flags().StringVarP(&o.language, "language", "l", "", "Set the language of the island the edit creates")
}

// islandResult is the json output of an island command.
type islandResult struct {
	Changed bool           `json:"changed"`
	Islands []island.State `json:"islands"`
	HTML    string         `json:"html"`
}

func runIsland(opts *islandOptions, edit func(*island.Editor, island.Node) bool) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	doc, err := island.ParseDocument(string(data))
	if err != nil {
		return err
	}

	var managerOpts []island.ManagerOption
	if opts.uuids {
		managerOpts = append(managerOpts, island.WithIDGenerator(island.UUIDs()))
	}
	editor := island.NewEditor(doc, nil, managerOpts...)
	editor.Load()
	defer editor.Close()

	target := doc.Block(opts.block)
	if target == nil {
		return fmt.Errorf("block %d out of range: document has %d blocks", opts.block, len(doc.Blocks()))
	}

	changed := edit(editor, target)
	if changed && opts.language != "" {
		if id := doc.Block(opts.block).IslandID(); id != "" {
			editor.Store().SetLanguage(id, opts.language)
		}
	}
	html, err := editor.HTML()
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	out := opts.stdout
	if out == nil {
		out = os.Stdout
	}
	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(out)

	if view.Format(opts.output) == view.FormatJSON {
		islands := editor.Store().All()
		return renderer.RenderJSON(islandResult{Changed: changed, Islands: islands, HTML: html})
	}

	renderer.RenderText(html)
	if !changed {
		renderer.Error(fmt.Sprintf("Block %d left unchanged", opts.block))
	}
	return nil
}
