package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/presets"
	"github.com/matzehuels/fordview/pkg/replay"
)

func TestToDOTPlain(t *testing.T) {
	g := graph.New[string](graph.Directed)
	g.AddNode("a")
	g.AddNode("b")
	if err := g.AddEdge("a", "b", -2.5); err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{})
	for _, want := range []string{
		"digraph G {",
		`"a" [label="a"];`,
		`"a" -> "b" [label="-2.5"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	dot = ToDOT(g, Options{HideWeights: true})
	if !strings.Contains(dot, `"a" -> "b";`) {
		t.Errorf("HideWeights should drop edge attrs:\n%s", dot)
	}
}

func TestToDOTUndirected(t *testing.T) {
	dot := ToDOT(presets.Errands(), Options{})
	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("undirected graph should use 'graph':\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("undirected graph should not contain arrows")
	}
	if got := strings.Count(dot, " -- "); got != 4 {
		t.Errorf("edge lines = %d, want 4", got)
	}
}

func TestToDOTReplay(t *testing.T) {
	g := presets.Errands()
	res, err := bellmanford.Run(g, "Home")
	if err != nil {
		t.Fatal(err)
	}
	rp := replay.Build(g, res)

	final := ToDOT(g, Options{Replay: rp, Frame: -1})
	if !strings.Contains(final, `"Home" [label="Home\n0", fillcolor=gold]`) {
		t.Errorf("source node not highlighted:\n%s", final)
	}
	if got := strings.Count(final, "penwidth=2.5"); got != g.EdgeCount() {
		t.Errorf("tree edges = %d, want %d (errands is a tree)", got, g.EdgeCount())
	}

	first := ToDOT(g, Options{Replay: rp, Frame: 0})
	if strings.Contains(first, "color="+ColorTree) {
		t.Error("tree should only be drawn on the final frame")
	}
	if !strings.Contains(first, `label="Gym\n∞"`) {
		t.Errorf("unreached node should show ∞:\n%s", first)
	}
}

func TestFormatWeight(t *testing.T) {
	tests := map[float64]string{
		0:    "0",
		3:    "3",
		-1.5: "-1.5",
	}
	for w, want := range tests {
		if got := FormatWeight(w); got != want {
			t.Errorf("FormatWeight(%v) = %q, want %q", w, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"PNG", FormatPNG, false},
		{"out/graph.dot", FormatDOT, false},
		{"report.pdf", FormatPDF, false},
		{"jpeg", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(presets.Directed(), Options{})
	svg, err := Render(context.Background(), dot, FormatSVG, 1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not SVG: %.80s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("got %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Errorf("no viewBox should pass through, got %s", got)
	}
}

func TestConverterMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := Render(context.Background(), "digraph G { a -> b }", FormatPNG, 2)
	if !errors.Is(err, ErrConverterMissing) {
		t.Errorf("PNG without rsvg-convert: err = %v", err)
	}
}
