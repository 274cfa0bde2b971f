package io

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/matrix"
)

// Distance is a distance label that survives JSON. Infinite values, which
// JSON numbers cannot hold, encode as the strings "inf" and "-inf".
type Distance float64

func (d Distance) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsInf(float64(d), 1):
		return []byte(`"inf"`), nil
	case math.IsInf(float64(d), -1):
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(float64(d))
}

func (d *Distance) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		return nil
	case `"inf"`:
		*d = Distance(math.Inf(1))
		return nil
	case `"-inf"`:
		*d = Distance(math.Inf(-1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("distance %s: %w", data, err)
	}
	*d = Distance(v)
	return nil
}

// ResultDocument is the JSON form of a shortest-path result. Unreached
// distances are null. A distance driven to -Inf by a negative cycle is
// "-inf".
type ResultDocument struct {
	Source        string                 `json:"source"`
	Nodes         []string               `json:"nodes"`
	Distances     map[string]*Distance   `json:"distances"`
	Parents       map[string]string      `json:"parents"`
	NegativeCycle bool                   `json:"negative_cycle"`
	Violation     *EdgeDocument          `json:"violation,omitempty"`
	History       []map[string]*Distance `json:"history"`
	Relaxations   []RelaxationDocument   `json:"relaxations,omitempty"`
}

// EdgeDocument is one weighted edge.
type EdgeDocument struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// RelaxationDocument is one relax step. Before is null when the target was
// unreached.
type RelaxationDocument struct {
	Pass   int       `json:"pass"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Weight float64   `json:"weight"`
	Before *Distance `json:"before"`
	After  Distance  `json:"after"`
}

// MatrixDocument is the JSON form of an adjacency matrix. Missing edges are
// null.
type MatrixDocument struct {
	Nodes   []string     `json:"nodes"`
	Weights [][]*float64 `json:"weights"`
}

// NewResultDocument converts res for encoding.
func NewResultDocument(res *bellmanford.Result[string]) ResultDocument {
	doc := ResultDocument{
		Source:        res.Source,
		Nodes:         res.Nodes,
		Distances:     encodeDistances(res.Distances),
		Parents:       res.Parents,
		NegativeCycle: res.NegativeCycle,
		History:       make([]map[string]*Distance, len(res.History)),
	}
	if res.Violation != nil {
		v := res.Violation
		doc.Violation = &EdgeDocument{From: v.From, To: v.To, Weight: v.Weight}
	}
	for i, snap := range res.History {
		doc.History[i] = encodeDistances(snap)
	}
	for _, rx := range res.Relaxations {
		doc.Relaxations = append(doc.Relaxations, RelaxationDocument{
			Pass:   rx.Pass,
			From:   rx.From,
			To:     rx.To,
			Weight: rx.Weight,
			Before: reached(rx.Before),
			After:  Distance(rx.After),
		})
	}
	return doc
}

// Result converts the document back into a result equal to the one it was
// built from.
func (d ResultDocument) Result() *bellmanford.Result[string] {
	res := &bellmanford.Result[string]{
		Source:        d.Source,
		Nodes:         d.Nodes,
		Distances:     decodeDistances(d.Distances),
		Parents:       d.Parents,
		NegativeCycle: d.NegativeCycle,
		History:       make([]bellmanford.Distances[string], len(d.History)),
	}
	if res.Parents == nil {
		res.Parents = map[string]string{}
	}
	if d.Violation != nil {
		v := d.Violation
		res.Violation = &graph.Edge[string]{From: v.From, To: v.To, Weight: v.Weight}
	}
	for i, snap := range d.History {
		res.History[i] = decodeDistances(snap)
	}
	for _, rx := range d.Relaxations {
		res.Relaxations = append(res.Relaxations, bellmanford.Relaxation[string]{
			Pass:   rx.Pass,
			From:   rx.From,
			To:     rx.To,
			Weight: rx.Weight,
			Before: orInf(rx.Before),
			After:  float64(rx.After),
		})
	}
	return res
}

// NewMatrixDocument converts m for encoding.
func NewMatrixDocument(m *matrix.Matrix[string]) MatrixDocument {
	n := m.Size()
	doc := MatrixDocument{
		Nodes:   m.Nodes,
		Weights: make([][]*float64, n),
	}
	if n == 0 {
		return doc
	}
	d := m.Dense()
	for i := range n {
		row := make([]*float64, n)
		for j := range n {
			row[j] = finite(d.At(i, j))
		}
		doc.Weights[i] = row
	}
	return doc
}

func encodeDistances(d bellmanford.Distances[string]) map[string]*Distance {
	out := make(map[string]*Distance, len(d))
	for n, v := range d {
		out[n] = reached(v)
	}
	return out
}

func decodeDistances(d map[string]*Distance) bellmanford.Distances[string] {
	out := make(bellmanford.Distances[string], len(d))
	for n, v := range d {
		out[n] = orInf(v)
	}
	return out
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// reached maps +Inf (unreached) to nil and keeps every other label,
// including -Inf.
func reached(v float64) *Distance {
	if math.IsInf(v, 1) {
		return nil
	}
	d := Distance(v)
	return &d
}

func orInf(v *Distance) float64 {
	if v == nil {
		return math.Inf(1)
	}
	return float64(*v)
}
