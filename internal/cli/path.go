package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/render"
)

// pathCommand creates the path command.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		source, target string
		noCache        bool
	)

	cmd := &cobra.Command{
		Use:     "path <file>",
		Short:   "Print the shortest path between two nodes",
		Example: "  fordview path roads.json --source Home --target Gym",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if err := requireNode(g, source, "source"); err != nil {
				return err
			}
			if err := requireNode(g, target, "target"); err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			res, _, err := runner.Run(ctx, g, source)
			if err != nil {
				return ferrors.FromGraph(err)
			}
			if res.NegativeCycle {
				printCycle(out, res)
				return ferrors.New(ferrors.ErrCodeNegativeCycle, "no shortest path: negative cycle reachable from %s", source)
			}
			p, err := res.PathTo(target)
			if err != nil {
				return ferrors.FromGraph(err)
			}

			hops := make([]string, len(p))
			for i, n := range p {
				hops[i] = StyleHighlight.Render(n)
			}
			fmt.Fprintln(out, strings.Join(hops, " "+StyleDim.Render(iconArrow)+" "))
			printKeyValue(out, "distance", render.FormatWeight(res.Distances[target]))
			printKeyValue(out, "hops", fmt.Sprint(len(p)-1))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source node (required)")
	cmd.Flags().StringVarP(&target, "target", "t", "", "target node (required)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
