package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	ferrors "github.com/matzehuels/fordview/pkg/errors"
	fio "github.com/matzehuels/fordview/pkg/io"
)

// execute runs the CLI with args in an isolated config and cache home and
// returns what the command printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("fordview %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestEditAndRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")

	mustExecute(t, "new", path, "--mode", "directed")
	mustExecute(t, "node", "add", path, "A", "B", "C", "D")
	mustExecute(t, "edge", "add", path, "A", "B", "4")
	mustExecute(t, "edge", "add", path, "A", "C", "1")
	mustExecute(t, "edge", "add", path, "C", "B", "--", "-2")

	out := mustExecute(t, "run", path, "--source", "A", "--node", "B")
	for _, want := range []string{"Shortest paths from A", "No negative cycle", "A → C → B"} {
		if !strings.Contains(out, want) {
			t.Errorf("run output missing %q:\n%s", want, out)
		}
	}

	out = mustExecute(t, "run", path, "-s", "A", "--json", "--no-cache")
	var doc fio.ResultDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode --json output: %v\n%s", err, out)
	}
	if *doc.Distances["B"] != -1 || doc.Parents["B"] != "C" {
		t.Errorf("B = %v via %q, want -1 via C", *doc.Distances["B"], doc.Parents["B"])
	}
	if doc.Distances["D"] != nil {
		t.Errorf("unreached D should be null, got %v", *doc.Distances["D"])
	}
	if len(doc.History) != 4 {
		t.Errorf("history length = %d, want 4", len(doc.History))
	}

	out = mustExecute(t, "path", path, "-s", "A", "-t", "B")
	if !strings.Contains(out, "A → C → B") || !strings.Contains(out, "-1") {
		t.Errorf("path output:\n%s", out)
	}

	mustExecute(t, "edge", "remove", path, "C", "B")
	mustExecute(t, "node", "remove", path, "C")
	g, err := fio.ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 1 {
		t.Errorf("graph = %d nodes %d edges, want 3/1", g.NodeCount(), g.EdgeCount())
	}
}

func TestMutationErrorsLeaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	mustExecute(t, "new", path, "--preset", "errands")
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code ferrors.Code
	}{
		{"unknown endpoint", []string{"edge", "add", path, "Home", "Mars", "1"}, ferrors.ErrCodeNodeNotFound},
		{"bad weight", []string{"edge", "add", path, "Home", "Work", "fast"}, ferrors.ErrCodeInvalidWeight},
		{"infinite weight", []string{"edge", "add", path, "Home", "Work", "Inf"}, ferrors.ErrCodeInvalidWeight},
		{"missing edge", []string{"edge", "remove", path, "Home", "Park"}, ferrors.ErrCodeEdgeNotFound},
		{"missing node", []string{"node", "remove", path, "Mars"}, ferrors.ErrCodeNodeNotFound},
		{"blank node", []string{"node", "add", path, " "}, ferrors.ErrCodeInvalidNode},
		{"unknown source", []string{"run", path, "-s", "Mars"}, ferrors.ErrCodeNodeNotFound},
		{"existing file", []string{"new", path}, ferrors.ErrCodeInvalidInput},
		{"missing file", []string{"run", path + ".missing.json", "-s", "Home"}, ferrors.ErrCodeFileNotFound},
		{"unknown extension", []string{"matrix", "graph.txt"}, ferrors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if code := ferrors.GetCode(err); code != tt.code {
				t.Errorf("code = %q (err %v), want %q", code, err, tt.code)
			}
		})
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("failed commands modified the graph file")
	}
}

func TestRunNegativeCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.toml")
	mustExecute(t, "new", path, "-m", "directed")
	mustExecute(t, "node", "add", path, "A", "B", "C")
	mustExecute(t, "edge", "add", path, "A", "B", "1")
	mustExecute(t, "edge", "add", path, "B", "C", "--", "-2")
	mustExecute(t, "edge", "add", path, "C", "A", "--", "-2")

	out := mustExecute(t, "run", path, "-s", "A")
	if !strings.Contains(out, "Negative cycle reachable from A") {
		t.Errorf("run should warn about the cycle:\n%s", out)
	}

	_, err := execute(t, "path", path, "-s", "A", "-t", "C")
	if !ferrors.Is(err, ferrors.ErrCodeNegativeCycle) {
		t.Errorf("path err = %v, want NEGATIVE_CYCLE", err)
	}
}

func TestMatrixCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	mustExecute(t, "new", path, "--preset", "errands")

	out := mustExecute(t, "matrix", path)
	for _, want := range []string{"Grocery", "∞", "5"} {
		if !strings.Contains(out, want) {
			t.Errorf("matrix output missing %q:\n%s", want, out)
		}
	}

	out = mustExecute(t, "matrix", path, "--json")
	var doc fio.MatrixDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Nodes) != 5 {
		t.Errorf("nodes = %v", doc.Nodes)
	}

	out = mustExecute(t, "matrix", path, "--csv")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 || !strings.HasPrefix(lines[0], ",") || !strings.Contains(out, "inf") {
		t.Errorf("csv output:\n%s", out)
	}

	if _, err := execute(t, "matrix", path, "--csv", "--json"); err == nil {
		t.Error("--csv and --json together should fail")
	}
}

func TestReplayPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	mustExecute(t, "new", path, "--preset", "undirected")

	out := mustExecute(t, "replay", path, "-s", "1")
	for _, want := range []string{"Distance history from 1", "#0", "#4", "pass 1", "tree"} {
		if !strings.Contains(out, want) {
			t.Errorf("replay output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.json")
	mustExecute(t, "new", path, "--preset", "directed")

	out := filepath.Join(dir, "tree.dot")
	mustExecute(t, "render", path, "-s", "1", "-o", out)
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "digraph G {") || !strings.Contains(string(data), "color=red") {
		t.Errorf("unexpected DOT:\n%s", data)
	}

	mustExecute(t, "render", path, "--format", "dot")
	if _, err := os.Stat(filepath.Join(dir, "g.dot")); err != nil {
		t.Errorf("default output name: %v", err)
	}
}

func TestRenderTarget(t *testing.T) {
	tests := []struct {
		input, output, format string
		wantFormat, wantPath  string
	}{
		{"g.json", "", "", "svg", "g.svg"},
		{"g.json", "out.png", "", "png", "out.png"},
		{"g.json", "", "pdf", "pdf", "g.pdf"},
		{"dir/g.yaml", "x.svg", "dot", "dot", "x.svg"},
	}
	for _, tt := range tests {
		f, p, err := renderTarget(tt.input, tt.output, tt.format)
		if err != nil {
			t.Fatalf("renderTarget(%q, %q, %q): %v", tt.input, tt.output, tt.format, err)
		}
		if string(f) != tt.wantFormat || p != tt.wantPath {
			t.Errorf("renderTarget(%q, %q, %q) = %s, %s", tt.input, tt.output, tt.format, f, p)
		}
	}
	if _, _, err := renderTarget("g.json", "out.gif", ""); err == nil {
		t.Error("gif should be rejected")
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfg, []byte(`default_mode = "undirected"`), 0o600); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "g.json")
	mustExecute(t, "--config", cfg, "new", path)

	g, err := fio.ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Mode().String() != "undirected" {
		t.Errorf("mode = %v, want undirected from config", g.Mode())
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte(`default_mode = "sideways"`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--config", bad, "matrix", path); err == nil {
		t.Error("invalid config should fail")
	}
}

func TestCacheCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	mustExecute(t, "new", path, "--preset", "directed")

	out := mustExecute(t, "cache", "path")
	if !strings.HasSuffix(strings.TrimSpace(out), "fordview") {
		t.Errorf("cache path = %q", out)
	}
	out = mustExecute(t, "cache", "clear")
	if !strings.Contains(out, "Cache is empty") && !strings.Contains(out, "Cleared") {
		t.Errorf("cache clear output: %q", out)
	}
}

func TestCompletion(t *testing.T) {
	out := mustExecute(t, "completion", "bash")
	if !strings.Contains(out, "fordview") {
		t.Error("bash completion should mention the program name")
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, ferrors.New(ferrors.ErrCodeNodeNotFound, "node %q missing", "X"))
	if got := buf.String(); !strings.Contains(got, `node "X" missing`) || strings.Contains(got, "NODE_NOT_FOUND") {
		t.Errorf("ReportError = %q", got)
	}
}
