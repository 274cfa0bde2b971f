package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	ferrors "github.com/matzehuels/fordview/pkg/errors"
	fio "github.com/matzehuels/fordview/pkg/io"
	"github.com/matzehuels/fordview/pkg/render"
)

type runOpts struct {
	source  string
	node    string
	json    bool
	history bool
	noCache bool
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run Bellman-Ford from a source node",
		Long: `Run Bellman-Ford from a source node and print every node's distance and
parent. The run always makes |V|-1 relaxation passes followed by one
verification pass that detects negative cycles reachable from the source.`,
		Example: `  fordview run roads.json --source Home
  fordview run roads.json -s Home --node Gym
  fordview run roads.json -s Home --json > result.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "source node (required)")
	cmd.Flags().StringVarP(&opts.node, "node", "n", "", "show distance, parent and path of one node")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&opts.history, "history", false, "also print the distance table after every pass")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (c *CLI) runRun(cmd *cobra.Command, path string, opts runOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	g, err := loadGraph(path)
	if err != nil {
		return err
	}
	if err := requireNode(g, opts.source, "source"); err != nil {
		return err
	}
	if opts.node != "" {
		if err := requireNode(g, opts.node, "node"); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	prog := newProgress(logger)
	res, cached, err := runner.Run(ctx, g, opts.source)
	if err != nil {
		return ferrors.FromGraph(err)
	}
	prog.done(fmt.Sprintf("Ran Bellman-Ford over %d nodes", g.NodeCount()))

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(fio.NewResultDocument(res))
	}

	fmt.Fprintln(out, StyleTitle.Render("Shortest paths from "+res.Source))
	printStats(out, g.NodeCount(), g.EdgeCount(), cached)
	fmt.Fprintln(out, distanceTable(res).Render())
	if opts.history {
		fmt.Fprintln(out, StyleTitle.Render("Distance history"))
		fmt.Fprintln(out, historyTable(res).Render())
	}
	printCycle(out, res)
	printKeyValue(out, "passes", fmt.Sprintf("%d + verification", len(res.History)-1))
	printKeyValue(out, "relaxations", fmt.Sprint(len(res.Relaxations)))
	printKeyValue(out, "elapsed", prog.elapsed().String())

	if opts.node != "" {
		fmt.Fprintln(out)
		printNodeInfo(out, res, opts.node)
	}
	return nil
}

// printCycle warns about a negative cycle, naming the edge that exposed it.
func printCycle(w io.Writer, res *bellmanford.Result[string]) {
	if !res.NegativeCycle {
		printSuccess(w, "No negative cycle reachable from %s", res.Source)
		return
	}
	printWarning(w, "Negative cycle reachable from %s: distances are not final", res.Source)
	if v := res.Violation; v != nil {
		printDetail(w, "edge %s %s %s (%s) still relaxes after %d passes",
			v.From, iconArrow, v.To, render.FormatWeight(v.Weight), len(res.History)-1)
	}
}

// printNodeInfo shows one node's label, parent and path.
func printNodeInfo(w io.Writer, res *bellmanford.Result[string], n string) {
	fmt.Fprintln(w, StyleTitle.Render("Node "+n))
	printKeyValue(w, "distance", render.FormatWeight(res.Distances[n]))
	parent := "-"
	if p, ok := res.Parent(n); ok {
		parent = p
	}
	printKeyValue(w, "parent", parent)

	p, err := res.PathTo(n)
	if err != nil {
		printKeyValue(w, "path", ferrors.UserMessage(err))
		return
	}
	printKeyValue(w, "path", strings.Join(p, " "+iconArrow+" "))
}
