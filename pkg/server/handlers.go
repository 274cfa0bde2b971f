package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/buildinfo"
	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/graph"
	fio "github.com/matzehuels/fordview/pkg/io"
	"github.com/matzehuels/fordview/pkg/presets"
	"github.com/matzehuels/fordview/pkg/store"
)

type createRequest struct {
	Mode   string `json:"mode"`
	Preset string `json:"preset"`
}

type nodeRequest struct {
	ID string `json:"id"`
}

type edgeRequest struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Weight *float64 `json:"weight"`
}

type graphResponse struct {
	ID        string          `json:"id"`
	Graph     json.RawMessage `json:"graph"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type pathResponse struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Path     []string `json:"path"`
	Distance float64  `json:"distance"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) createGraph(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			s.writeError(w, err)
			return
		}
	}

	var g *graph.Graph[string]
	switch {
	case req.Preset != "" && req.Mode != "":
		s.writeError(w, ferrors.New(ferrors.ErrCodeInvalidInput, "mode and preset are mutually exclusive"))
		return
	case req.Preset != "":
		p, err := presets.ByName(req.Preset)
		if err != nil {
			s.writeError(w, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err,
				"unknown preset %q (available: %s)", req.Preset, strings.Join(presets.Names(), ", ")))
			return
		}
		g = p
	default:
		mode := s.defaultMode
		if req.Mode != "" {
			m, err := graph.ParseMode(req.Mode)
			if err != nil {
				s.writeError(w, err)
				return
			}
			mode = m
		}
		g = graph.NewFunc(mode, graph.CompareNatural)
	}

	rec := store.NewRecord(g)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, ferrors.Wrap(ferrors.ErrCodeStorage, err, "save graph"))
		return
	}
	s.writeRecord(w, http.StatusCreated, rec)
}

func (s *Server) listGraphs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, ferrors.Wrap(ferrors.ErrCodeStorage, err, "list graphs"))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.load(w, r)
	if !ok {
		return
	}
	s.writeRecord(w, http.StatusOK, rec)
}

func (s *Server) deleteGraph(w http.ResponseWriter, r *http.Request) {
	id, err := graphID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addNode(w http.ResponseWriter, r *http.Request) {
	var req nodeRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := ferrors.ValidateNodeID(req.ID); err != nil {
		s.writeError(w, err)
		return
	}
	s.update(w, r, http.StatusCreated, func(g *graph.Graph[string]) error {
		g.AddNode(req.ID)
		return nil
	})
}

func (s *Server) removeNode(w http.ResponseWriter, r *http.Request) {
	node, err := param(r, "node")
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.update(w, r, http.StatusOK, func(g *graph.Graph[string]) error {
		return g.RemoveNode(node)
	})
}

func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	switch {
	case req.From == "":
		s.writeError(w, errMissing("from"))
		return
	case req.To == "":
		s.writeError(w, errMissing("to"))
		return
	case req.Weight == nil:
		s.writeError(w, errMissing("weight"))
		return
	}
	s.update(w, r, http.StatusCreated, func(g *graph.Graph[string]) error {
		return g.AddEdge(req.From, req.To, *req.Weight)
	})
}

func (s *Server) removeEdge(w http.ResponseWriter, r *http.Request) {
	from, err := param(r, "from")
	if err != nil {
		s.writeError(w, err)
		return
	}
	to, err := param(r, "to")
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.update(w, r, http.StatusOK, func(g *graph.Graph[string]) error {
		return g.RemoveEdge(from, to)
	})
}

func (s *Server) run(w http.ResponseWriter, r *http.Request) {
	source, err := query(r, "source")
	if err != nil {
		s.writeError(w, err)
		return
	}
	rec, ok := s.load(w, r)
	if !ok {
		return
	}
	res, cached, err := s.runner.Run(r.Context(), rec.Graph, source)
	if err != nil {
		s.writeError(w, err)
		return
	}
	setCacheHeader(w, cached)
	s.writeJSON(w, http.StatusOK, fio.NewResultDocument(res))
}

func (s *Server) matrix(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.load(w, r)
	if !ok {
		return
	}
	doc, cached := s.runner.Matrix(r.Context(), rec.Graph)
	setCacheHeader(w, cached)
	s.writeJSON(w, http.StatusOK, doc)
}

func (s *Server) path(w http.ResponseWriter, r *http.Request) {
	source, err := query(r, "source")
	if err != nil {
		s.writeError(w, err)
		return
	}
	target, err := query(r, "target")
	if err != nil {
		s.writeError(w, err)
		return
	}
	rec, ok := s.load(w, r)
	if !ok {
		return
	}
	res, _, err := s.runner.Run(r.Context(), rec.Graph, source)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if res.NegativeCycle {
		s.writeError(w, negativeCycle(res))
		return
	}
	p, err := res.PathTo(target)
	if err != nil {
		s.writeError(w, err)
		return
	}
	d, _ := res.Distance(target)
	s.writeJSON(w, http.StatusOK, pathResponse{Source: source, Target: target, Path: p, Distance: d})
}

// load fetches the graph named by {id}, writing the error response on
// failure.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id, err := graphID(r)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return rec, true
}

// update applies fn to the graph named by {id} and responds with the saved
// graph. A failing fn leaves the stored graph untouched.
func (s *Server) update(w http.ResponseWriter, r *http.Request, status int, fn func(*graph.Graph[string]) error) {
	id, err := graphID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.mu.Lock()
	rec, err := store.Update(r.Context(), s.store, id, fn)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeRecord(w, status, rec)
}

func (s *Server) writeRecord(w http.ResponseWriter, status int, rec *store.Record) {
	data, err := fio.Marshal(rec.Graph)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, status, graphResponse{
		ID:        rec.ID,
		Graph:     data,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

func negativeCycle(res *bellmanford.Result[string]) error {
	if v := res.Violation; v != nil {
		return ferrors.New(ferrors.ErrCodeNegativeCycle,
			"negative cycle reachable from %s (edge %s -> %s still relaxes)", res.Source, v.From, v.To)
	}
	return ferrors.New(ferrors.ErrCodeNegativeCycle, "negative cycle reachable from %s", res.Source)
}

func setCacheHeader(w http.ResponseWriter, cached bool) {
	if cached {
		w.Header().Set("X-Cache", "hit")
		return
	}
	w.Header().Set("X-Cache", "miss")
}
