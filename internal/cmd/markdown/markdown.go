// Package markdown provides the commands that tokenize, render, and
// reformat markdown documents.
package markdown

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdblock/internal/config"
	"github.com/open-cli-collective/mdblock/pkg/md"
)

// input describes where a command reads its document from and where it
// writes. Tests set stdin and stdout directly.
type input struct {
	file       string
	html       bool
	format     string
	configPath string
	noColor    bool
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

func (in *input) bind(cmd *cobra.Command, args []string) {
	if len(args) > 0 {
		in.file = args[0]
	}
	in.configPath, _ = cmd.Flags().GetString("config")
	in.noColor, _ = cmd.Flags().GetBool("no-color")
	in.stdin = cmd.InOrStdin()
	in.stdout = cmd.OutOrStdout()
	in.stderr = cmd.ErrOrStderr()
}

func (in *input) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&in.html, "html", false, "Treat input as HTML and convert it to markdown first")
	cmd.Flags().StringVar(&in.format, "format", "", "Rewrite detected JSON/YAML blocks to this format (json, yaml)")
}

// path returns the config file named by --config, or the default one.
func (in *input) path() string {
	return config.PathOrDefault(in.configPath)
}

// loadConfig reads the config file with environment overrides. A missing
// file yields an empty config.
func (in *input) loadConfig() *config.Config {
	cfg, _ := config.LoadWithEnv(in.path())
	return cfg
}

// read returns the document text: the named file, or stdin when the file is
// empty or "-".
func (in *input) read() (string, error) {
	if in.file != "" && in.file != "-" {
		data, err := os.ReadFile(in.file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}
	if in.stdin == nil {
		in.stdin = os.Stdin
	}
	data, err := io.ReadAll(in.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// preferredFormat resolves the format detected structured data is rewritten
// to: the --format flag, then MDB_PREFERRED_FORMAT, then the stored
// preference. A stored value that is not a known format counts as none.
func (in *input) preferredFormat() string {
	if in.format != "" {
		return in.format
	}
	env := &config.Config{}
	env.LoadFromEnv()
	if env.PreferredFormat != "" {
		return env.PreferredFormat
	}
	return config.NewPreferences(in.path()).PreferredFormat()
}

// tokenize reads the document and tokenizes it, converting HTML input to
// markdown first when --html is set.
func (in *input) tokenize() (*md.TokenizeResult, error) {
	if in.format != "" && !md.ValidFormat(in.format) {
		return nil, fmt.Errorf("invalid format %q: must be json or yaml", in.format)
	}
	text, err := in.read()
	if err != nil {
		return nil, err
	}

	opts := md.TokenizeOptions{PreferredFormat: in.preferredFormat()}
	if in.html {
		return md.TokenizeHTML(text, opts)
	}
	return md.TokenizeWithOptions(text, opts), nil
}

func (in *input) out() io.Writer {
	if in.stdout == nil {
		return os.Stdout
	}
	return in.stdout
}

func (in *input) errOut() io.Writer {
	if in.stderr == nil {
		return os.Stderr
	}
	return in.stderr
}
