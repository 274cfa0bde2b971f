// Package render draws graphs and shortest-path replays.
//
// # Overview
//
// [ToDOT] turns a graph into Graphviz DOT source. Given a replay it also
// labels each node with its distance in the chosen frame, colors settled
// edges green and, on the last frame, draws the shortest-path tree in red.
//
//	res, _ := bellmanford.Run(g, "A")
//	dot := render.ToDOT(g, render.Options{Replay: replay.Build(g, res), Frame: -1})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Format Conversion
//
// [RenderSVG] runs Graphviz in-process through go-graphviz. [ToPDF] and
// [ToPNG] convert SVG with the external rsvg-convert tool (from librsvg).
//
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
package render
