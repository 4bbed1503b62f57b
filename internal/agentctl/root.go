// Package agentctl is the operator CLI for inspecting the marketplace fixtures
// through the same filter pipeline the website uses.
package agentctl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"axiomai.dev/marketplace-web/internal/site"
)

const dataDirEnv = "MARKETPLACE_DATA_DIR"

type options struct {
	dataDir string
	output  string
}

// NewRootCommand builds a fresh command tree so tests can execute it repeatedly.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "agentctl",
		Short: "Inspect the AI agents marketplace data",
		Long: `Command-line access to the marketplace listings and pricing plans.

Listings are filtered and sorted exactly as the website does it, so
"agentctl agents list --category Chatbots --sort rating" shows what a visitor
would see with the same selections.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", os.Getenv(dataDirEnv), "fixture directory (default: built-in data, env "+dataDirEnv+")")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json, yaml)")

	root.AddCommand(newAgentsCmd(opts))
	root.AddCommand(newCategoriesCmd(opts))
	root.AddCommand(newPlansCmd(opts))
	return root
}

func (o *options) load() (*site.Content, error) {
	content, err := site.Load(o.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	return content, nil
}

func (o *options) validateOutput() error {
	switch o.output {
	case "table", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want table, json, or yaml)", o.output)
	}
}

// encode writes v as json or yaml. It reports false for table output.
func (o *options) encode(w io.Writer, v any) (bool, error) {
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}
