package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/replay"
)

type replayOpts struct {
	source   string
	interval time.Duration
	plain    bool
}

// replayCommand creates the replay command.
func (c *CLI) replayCommand() *cobra.Command {
	var opts replayOpts

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Step through the relaxation passes of a run",
		Long: `Replay a run pass by pass. Each snapshot shows the distance labels after one
pass; edges whose target already holds its final distance are marked
settled, and the last snapshot shows the shortest-path tree.

On a terminal this opens an interactive view. Otherwise, or with --plain, the
distance history is printed as a table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "source node (required)")
	cmd.Flags().DurationVar(&opts.interval, "interval", 0, "time between snapshots (default from config)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print tables instead of the interactive view")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (c *CLI) runReplay(cmd *cobra.Command, path string, opts replayOpts) error {
	out := cmd.OutOrStdout()
	g, err := loadGraph(path)
	if err != nil {
		return err
	}
	if err := requireNode(g, opts.source, "source"); err != nil {
		return err
	}
	res, err := bellmanford.Run(g, opts.source,
		bellmanford.WithContext(cmd.Context()),
		bellmanford.WithLogger(loggerFromContext(cmd.Context())))
	if err != nil {
		return ferrors.FromGraph(err)
	}
	rp := replay.Build(g, res)

	if opts.plain || !isTerminal(out) {
		printReplay(out, res, rp)
		return nil
	}

	interval := opts.interval
	if interval <= 0 {
		interval = c.Config.Replay.Interval.Duration
	}
	p := tea.NewProgram(NewReplayModel(g, rp, interval),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(out))
	_, err = p.Run()
	return err
}

// printReplay is the non-interactive replay: the history table followed by
// what changed and settled in every pass.
func printReplay(w io.Writer, res *bellmanford.Result[string], rp *replay.Replay[string]) {
	fmt.Fprintln(w, StyleTitle.Render("Distance history from "+rp.Source))
	fmt.Fprintln(w, historyTable(res).Render())
	for _, f := range rp.Frames[1:] {
		changed := "nothing"
		if len(f.Changed) > 0 {
			changed = strings.Join(f.Changed, ", ")
		}
		printInfo(w, "pass %d: improved %s; %d edge(s) settled", f.Index, changed, len(f.Settled))
	}
	if len(rp.Tree) > 0 {
		parts := make([]string, len(rp.Tree))
		for i, e := range rp.Tree {
			parts[i] = e.From + iconArrow + e.To
		}
		printKeyValue(w, "tree", strings.Join(parts, "  "))
	}
	printCycle(w, res)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
