package cli

import (
	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/render"
)

// edgeCommand groups edge mutations.
func (c *CLI) edgeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Add or remove weighted edges in a graph file",
	}
	cmd.AddCommand(c.edgeAddCommand())
	cmd.AddCommand(c.edgeRemoveCommand())
	return cmd
}

func (c *CLI) edgeAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <from> <to> <weight>",
		Short: "Add an edge, or overwrite the weight of an existing one",
		Long: `Add an edge between two existing nodes. Weights may be negative but must be
finite. In an undirected graph the edge works in both directions.`,
		Example: "  fordview edge add roads.json Home Work 5\n  fordview edge add flows.json B C -- -2",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, from, to := args[0], args[1], args[2]
			w, err := ferrors.ParseWeight(args[3])
			if err != nil {
				return err
			}
			g, err := editGraph(path, func(g *graph.Graph[string]) error {
				if err := requireNode(g, from, "from"); err != nil {
					return err
				}
				if err := requireNode(g, to, "to"); err != nil {
					return err
				}
				return g.AddEdge(from, to, w)
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Edge %s %s %s weighs %s", from, arrow(g), to, StyleNumber.Render(render.FormatWeight(w)))
			printStats(out, g.NodeCount(), g.EdgeCount(), false)
			return nil
		},
	}
}

func (c *CLI) edgeRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <file> <from> <to>",
		Aliases: []string{"rm"},
		Short:   "Remove an edge",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, from, to := args[0], args[1], args[2]
			g, err := editGraph(path, func(g *graph.Graph[string]) error {
				return g.RemoveEdge(from, to)
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Removed edge %s %s %s", from, arrow(g), to)
			printStats(out, g.NodeCount(), g.EdgeCount(), false)
			return nil
		},
	}
}

func arrow(g *graph.Graph[string]) string {
	if g.Mode() == graph.Undirected {
		return "—"
	}
	return iconArrow
}
