package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/matrix"
	"github.com/matzehuels/fordview/pkg/render"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, settled edges
	colorYellow = lipgloss.Color("220") // Amber - warnings, source node
	colorRed    = lipgloss.Color("167") // Soft red - errors, tree edges
	colorBlue   = lipgloss.Color("75")  // Light blue - changed labels
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleInf     = styleCell.Foreground(colorDim)
	styleSource  = styleCell.Foreground(colorYellow).Bold(true)
	styleChanged = styleCell.Foreground(colorBlue).Bold(true)
	styleBorder  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, nodeCount, edgeCount int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d nodes", nodeCount),
		fmt.Sprintf("%d edges", edgeCount),
	}

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	var line strings.Builder
	line.WriteString("  ")
	for i, part := range parts {
		if i > 0 {
			line.WriteString(StyleDim.Render(" · "))
		}
		line.WriteString(StyleDim.Render(part))
	}
	fmt.Fprintln(w, line.String())
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Tables
// =============================================================================

// distanceTable lists every node with its distance and parent.
func distanceTable(res *bellmanford.Result[string]) *table.Table {
	rows := make([][]string, 0, len(res.Nodes))
	for _, n := range res.Nodes {
		parent := "-"
		if p, ok := res.Parent(n); ok {
			parent = p
		}
		rows = append(rows, []string{n, render.FormatWeight(res.Distances[n]), parent})
	}
	return newTable([]string{"node", "distance", "parent"}, rows, func(row, col int) lipgloss.Style {
		switch {
		case row >= 0 && col == 0 && res.Nodes[row] == res.Source:
			return styleSource
		case row >= 0 && col == 1 && !res.Distances.Reached(res.Nodes[row]):
			return styleInf
		}
		return styleCell
	})
}

// historyTable shows one column per snapshot. Labels that changed in a pass
// are highlighted.
func historyTable(res *bellmanford.Result[string]) *table.Table {
	headers := []string{"node"}
	for i := range res.History {
		headers = append(headers, fmt.Sprintf("#%d", i))
	}
	rows := make([][]string, len(res.Nodes))
	for r, n := range res.Nodes {
		row := []string{n}
		for _, snap := range res.History {
			row = append(row, render.FormatWeight(snap[n]))
		}
		rows[r] = row
	}
	return newTable(headers, rows, func(row, col int) lipgloss.Style {
		if row < 0 || col == 0 {
			return styleCell
		}
		n, i := res.Nodes[row], col-1
		switch {
		case !res.History[i].Reached(n):
			return styleInf
		case i > 0 && res.History[i-1][n] != res.History[i][n]:
			return styleChanged
		}
		return styleCell
	})
}

// matrixTable draws the adjacency matrix with ∞ for missing edges.
func matrixTable(m *matrix.Matrix[string]) *table.Table {
	headers := append([]string{""}, m.Nodes...)
	rows := make([][]string, m.Size())
	for i, n := range m.Nodes {
		row := []string{n}
		for _, w := range m.Weights[i] {
			row = append(row, render.FormatWeight(w))
		}
		rows[i] = row
	}
	return newTable(headers, rows, func(row, col int) lipgloss.Style {
		switch {
		case row < 0:
			return styleCell
		case col == 0:
			return styleHeader
		case rows[row][col] == "∞":
			return styleInf
		}
		return styleCell
	})
}

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

func newTable(headers []string, rows [][]string, style func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			return style(row, col)
		})
}
