package cli

import (
	"os"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/presets"
)

type newOpts struct {
	mode   string
	preset string
	force  bool
}

// newCommand creates the new command for starting a graph file.
func (c *CLI) newCommand() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty graph file, or one filled from a preset",
		Long: `Create a graph file. The format follows the extension: .json, .toml, .yaml or .yml.

Presets: ` + presetNames(),
		Example: `  fordview new roads.json --mode undirected
  fordview new sample.yaml --preset errands`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNew(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "directed or undirected (default from config)")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "fill the graph from a preset")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing file")
	cmd.MarkFlagsMutuallyExclusive("mode", "preset")

	return cmd
}

func (c *CLI) runNew(cmd *cobra.Command, path string, opts newOpts) error {
	out := cmd.OutOrStdout()
	if _, err := os.Stat(path); err == nil && !opts.force {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
	}

	var g *graph.Graph[string]
	switch {
	case opts.preset != "":
		p, err := presets.ByName(opts.preset)
		if err != nil {
			return ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "unknown preset %q (available: %s)", opts.preset, presetNames())
		}
		g = p
	default:
		mode := c.Config.Mode()
		if opts.mode != "" {
			m, err := graph.ParseMode(opts.mode)
			if err != nil {
				return ferrors.FromGraph(err)
			}
			mode = m
		}
		g = graph.NewFunc(mode, graph.CompareNatural)
	}

	if err := saveGraph(g, path); err != nil {
		return err
	}
	printSuccess(out, "Created %s graph", modeName(g.Mode()))
	printStats(out, g.NodeCount(), g.EdgeCount(), false)
	printFile(out, path)
	if g.NodeCount() == 0 {
		printNextStep(out, "Add nodes", "fordview node add "+path+" A B C")
	} else {
		printNextStep(out, "Run it", "fordview run "+path+" --source "+g.Nodes()[0])
	}
	return nil
}
