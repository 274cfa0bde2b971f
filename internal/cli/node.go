package cli

import (
	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/graph"
)

// nodeCommand groups node mutations.
func (c *CLI) nodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Add or remove nodes in a graph file",
	}
	cmd.AddCommand(c.nodeAddCommand())
	cmd.AddCommand(c.nodeRemoveCommand())
	return cmd
}

func (c *CLI) nodeAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <file> <id>...",
		Short:   "Add nodes (existing ones are left as they are)",
		Example: "  fordview node add roads.json Home Work Gym",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ids := args[0], args[1:]
			for _, id := range ids {
				if err := ferrors.ValidateNodeID(id); err != nil {
					return err
				}
			}
			g, err := editGraph(path, func(g *graph.Graph[string]) error {
				for _, id := range ids {
					g.AddNode(id)
				}
				return nil
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Added %d node(s)", len(ids))
			printStats(out, g.NodeCount(), g.EdgeCount(), false)
			return nil
		},
	}
}

func (c *CLI) nodeRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <file> <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a node and every edge touching it",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, id := args[0], args[1]
			g, err := editGraph(path, func(g *graph.Graph[string]) error {
				return g.RemoveNode(id)
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Removed node %s", StyleHighlight.Render(id))
			printStats(out, g.NodeCount(), g.EdgeCount(), false)
			return nil
		},
	}
}
