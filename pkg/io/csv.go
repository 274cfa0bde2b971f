package io

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/matzehuels/fordview/pkg/matrix"
)

// WriteMatrixCSV writes m as CSV. The header row and the first column hold
// node IDs; missing edges are written as "inf".
func WriteMatrixCSV(w io.Writer, m *matrix.Matrix[string]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, m.Nodes...)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if n := m.Size(); n > 0 {
		d := m.Dense()
		for i := range n {
			rec := make([]string, 0, n+1)
			rec = append(rec, m.Nodes[i])
			for j := range n {
				rec = append(rec, formatCell(d.At(i, j)))
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func formatCell(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
