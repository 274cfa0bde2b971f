package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/render"
	"github.com/matzehuels/fordview/pkg/replay"
)

var (
	styleTreeEdge    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleSettledEdge = lipgloss.NewStyle().Foreground(colorGreen)
	styleOpenEdge    = lipgloss.NewStyle().Foreground(colorDim)
	styleHelp        = lipgloss.NewStyle().Foreground(colorDim)
)

// tickMsg advances an auto-playing replay. Ticks scheduled before the last
// play, pause or step carry an older gen and are dropped.
type tickMsg struct{ gen int }

// ReplayModel is the bubbletea model that steps through the passes of one
// run. Edges settled in the current frame are green; on the last frame the
// shortest-path tree is drawn in red.
type ReplayModel struct {
	Replay   *replay.Replay[string]
	Edges    []graph.Edge[string]
	Directed bool
	Interval time.Duration

	Frame   int
	Playing bool

	gen int
}

// NewReplayModel creates a model that starts playing from frame 0.
func NewReplayModel(g *graph.Graph[string], rp *replay.Replay[string], interval time.Duration) ReplayModel {
	return ReplayModel{
		Replay:   rp,
		Edges:    g.Edges(),
		Directed: g.Mode() == graph.Directed,
		Interval: interval,
		Playing:  true,
	}
}

func (m ReplayModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m ReplayModel) Init() tea.Cmd {
	return m.tick()
}

func (m ReplayModel) last() int { return m.Replay.Len() - 1 }

// stop pauses playback and invalidates any tick still in flight.
func (m *ReplayModel) stop() {
	m.Playing = false
	m.gen++
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.Playing || msg.gen != m.gen {
			return m, nil
		}
		if m.Frame >= m.last() {
			m.Playing = false
			return m, nil
		}
		m.Frame++
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.gen++
			m.Playing = !m.Playing
			if m.Playing {
				if m.Frame >= m.last() {
					m.Frame = 0
				}
				return m, m.tick()
			}
		case "right", "l", "n":
			m.stop()
			if m.Frame < m.last() {
				m.Frame++
			}
		case "left", "h", "b":
			m.stop()
			if m.Frame > 0 {
				m.Frame--
			}
		case "home", "g":
			m.stop()
			m.Frame = 0
		case "end", "G":
			m.stop()
			m.Frame = m.last()
		}
	}
	return m, nil
}

func (m ReplayModel) View() string {
	var b strings.Builder
	f := m.Replay.Frame(m.Frame)
	final := f.Index == m.last()

	title := fmt.Sprintf("Bellman-Ford from %s · snapshot %d/%d", m.Replay.Source, f.Index, m.last())
	if f.Index == 0 {
		title += " (initial labels)"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.frameTable(f).Render())
	b.WriteString("\n\n")
	b.WriteString(m.edgeList(f, final))

	if final && m.Replay.NegativeCycle {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(iconWarning + " negative cycle reachable from " + m.Replay.Source))
	}

	state := "paused"
	if m.Playing {
		state = "playing"
	}
	b.WriteString("\n\n")
	b.WriteString(styleHelp.Render(fmt.Sprintf("[%s] space play/pause · ←/→ step · g/G first/last · q quit", state)))
	b.WriteString("\n")
	return b.String()
}

func (m ReplayModel) frameTable(f replay.Frame[string]) *table.Table {
	changed := make(map[string]bool, len(f.Changed))
	for _, n := range f.Changed {
		changed[n] = true
	}
	rows := make([][]string, len(m.Replay.Nodes))
	for i, n := range m.Replay.Nodes {
		rows[i] = []string{n, render.FormatWeight(f.Distances[n])}
	}
	return newTable([]string{"node", "distance"}, rows, func(row, col int) lipgloss.Style {
		n := m.Replay.Nodes[row]
		switch {
		case n == m.Replay.Source:
			return styleSource
		case changed[n]:
			return styleChanged
		case !f.Distances.Reached(n):
			return styleInf
		}
		return styleCell
	})
}

// edgeList prints every edge colored by its state in frame f.
func (m ReplayModel) edgeList(f replay.Frame[string], final bool) string {
	settled := make(map[[2]string]bool, len(f.Settled))
	for _, e := range f.Settled {
		settled[[2]string{e.From, e.To}] = true
	}
	has := func(set func(u, v string) bool, e graph.Edge[string]) bool {
		return set(e.From, e.To) || (!m.Directed && set(e.To, e.From))
	}
	inSettled := func(u, v string) bool { return settled[[2]string{u, v}] }

	sep := " — "
	if m.Directed {
		sep = " " + iconArrow + " "
	}
	lines := make([]string, 0, len(m.Edges))
	for _, e := range m.Edges {
		line := fmt.Sprintf("%s%s%s  %s", e.From, sep, e.To, render.FormatWeight(e.Weight))
		switch {
		case final && has(m.Replay.InTree, e):
			line = styleTreeEdge.Render(line + "  tree")
		case has(inSettled, e):
			line = styleSettledEdge.Render(line + "  settled")
		default:
			line = styleOpenEdge.Render(line)
		}
		lines = append(lines, "  "+line)
	}
	return strings.Join(lines, "\n")
}
