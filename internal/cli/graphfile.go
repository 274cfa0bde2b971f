package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/graph"
	fio "github.com/matzehuels/fordview/pkg/io"
	"github.com/matzehuels/fordview/pkg/presets"
)

// loadGraph reads a graph file, classifying the common failures.
func loadGraph(path string) (*graph.Graph[string], error) {
	if _, err := fio.FormatFromPath(path); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "%v", err)
	}
	g, err := fio.ImportFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err,
			"graph file %s does not exist (create it with 'fordview new %s')", path, path)
	case err != nil:
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "%v", err)
	}
	return g, nil
}

// saveGraph writes g to path in the format its extension names.
func saveGraph(g *graph.Graph[string], path string) error {
	if err := fio.ExportFile(g, path); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeStorage, err, "%v", err)
	}
	return nil
}

// editGraph loads path, applies fn and saves the result. Nothing is written
// when fn fails.
func editGraph(path string, fn func(g *graph.Graph[string]) error) (*graph.Graph[string], error) {
	g, err := loadGraph(path)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, ferrors.FromGraph(err)
	}
	return g, saveGraph(g, path)
}

// requireNode reports a missing node with the list of known ones.
func requireNode(g *graph.Graph[string], id, role string) error {
	if g.HasNode(id) {
		return nil
	}
	return ferrors.New(ferrors.ErrCodeNodeNotFound, "%s %q is not in the graph (nodes: %s)",
		role, id, strings.Join(g.Nodes(), ", "))
}

// presetNames is the help text listing presets.
func presetNames() string {
	return strings.Join(presets.Names(), ", ")
}

func modeName(m graph.Mode) string {
	return fmt.Sprint(m)
}
