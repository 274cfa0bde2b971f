package graph

import (
	"fmt"
	"strings"
)

// Mode selects how edges are interpreted.
type Mode int

const (
	// Undirected graphs traverse every edge both ways with the same weight.
	Undirected Mode = iota
	// Directed graphs treat (u,v) and (v,u) as distinct edges.
	Directed
)

// String returns "undirected" or "directed".
func (m Mode) String() string {
	switch m {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to a Mode. Matching is case-insensitive and
// accepts the short forms "d" and "u".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "directed", "d", "digraph":
		return Directed, nil
	case "undirected", "u", "graph", "":
		return Undirected, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Directed && m != Undirected {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
