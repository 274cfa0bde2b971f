package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/store"
)

// errorBody is the JSON form of every error response.
type errorBody struct {
	Code    ferrors.Code `json:"code"`
	Message string       `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	err = classify(err)
	code := ferrors.GetCode(err)
	status := ferrors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorBody{Code: code, Message: ferrors.UserMessage(err)})
}

// classify maps store misses to GRAPH_NOT_FOUND and everything else through
// the graph error table.
func classify(err error) error {
	var e *ferrors.Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, store.ErrNotFound) {
		return ferrors.Wrap(ferrors.ErrCodeGraphNotFound, err, "%v", err)
	}
	return ferrors.FromGraph(err)
}

// decode reads a JSON body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "invalid request body: %v", err)
	}
	return nil
}

// param returns a decoded URL parameter. chi matches against RawPath when
// the request has one, so only then is the value still escaped.
func param(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	v, err := url.PathUnescape(v)
	if err != nil {
		return "", ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "invalid %s in path", name)
	}
	return v, nil
}

// graphID returns the validated {id} parameter.
func graphID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if err := ferrors.ValidateGraphID(id); err != nil {
		return "", err
	}
	return id, nil
}

// query returns a required query parameter.
func query(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", ferrors.New(ferrors.ErrCodeInvalidInput, "missing query parameter %q", name)
	}
	return v, nil
}

func errMissing(field string) error {
	return ferrors.New(ferrors.ErrCodeInvalidInput, "missing field %q", field)
}
