package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/render"
	"github.com/matzehuels/fordview/pkg/replay"
)

type renderOpts struct {
	output      string
	format      string
	source      string
	frame       int
	scale       float64
	hideWeights bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Draw a graph with Graphviz",
		Long: `Draw a graph as DOT, SVG, PNG or PDF. With --source the drawing shows the
distance labels of one replay snapshot (--frame, default the last) and, on the
last snapshot, the shortest-path tree in red. PNG and PDF need rsvg-convert.`,
		Example: `  fordview render roads.json -o roads.svg
  fordview render roads.json -s Home -o tree.png
  fordview render roads.json -s Home --frame 1 -o pass1.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <file>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "dot, svg, png or pdf (default from --output, else svg)")
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "highlight a run from this node")
	cmd.Flags().IntVar(&opts.frame, "frame", -1, "replay snapshot to draw; negative counts from the end")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.hideWeights, "hide-weights", false, "omit edge weight labels")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	g, err := loadGraph(path)
	if err != nil {
		return err
	}

	format, output, err := renderTarget(path, opts.output, opts.format)
	if err != nil {
		return err
	}

	dopts := render.Options{Frame: opts.frame, HideWeights: opts.hideWeights}
	if opts.source != "" {
		if err := requireNode(g, opts.source, "source"); err != nil {
			return err
		}
		res, err := bellmanford.Run(g, opts.source, bellmanford.WithContext(ctx))
		if err != nil {
			return ferrors.FromGraph(err)
		}
		dopts.Replay = replay.Build(g, res)
		if res.NegativeCycle {
			printWarning(out, "Negative cycle reachable from %s", opts.source)
		}
	}

	spin := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering "+string(format))
	spin.Start()
	data, err := render.Render(ctx, render.ToDOT(g, dopts), format, opts.scale)
	spin.Stop()
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeUnsupported, err, "%v", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeStorage, err, "write %s", output)
	}
	printSuccess(out, "Rendered %s", strings.ToUpper(string(format)))
	printFile(out, output)
	return nil
}

// renderTarget resolves the output format and file name. An explicit
// format wins; otherwise the output extension decides, defaulting to SVG.
func renderTarget(input, output, format string) (render.Format, string, error) {
	var (
		f   render.Format
		err error
	)
	switch {
	case format != "":
		f, err = render.ParseFormat(format)
	case output != "":
		f, err = render.ParseFormat(output)
	default:
		f = render.FormatSVG
	}
	if err != nil {
		return "", "", ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "%v", err)
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(f)
	}
	return f, output, nil
}
