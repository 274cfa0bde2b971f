package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/graph"
	fio "github.com/matzehuels/fordview/pkg/io"
	"github.com/matzehuels/fordview/pkg/matrix"
	"github.com/matzehuels/fordview/pkg/observability"
)

// Runner runs Bellman-Ford through a cache.
//
// Cache failures never fail a run: a broken backend degrades to running the
// engine every time, with a warning in the log.
type Runner struct {
	Cache  Cache
	Keyer  Keyer
	TTL    time.Duration
	Logger *log.Logger
}

// NewRunner creates a Runner. Nil arguments fall back to [NullCache],
// [DefaultKeyer] and log.Default().
func NewRunner(c Cache, k Keyer, ttl time.Duration, logger *log.Logger) *Runner {
	if c == nil {
		c = NewNullCache()
	}
	if k == nil {
		k = NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: k, TTL: ttl, Logger: logger}
}

// Run returns the result of a run from source over g, reporting whether it
// came from the cache.
func (r *Runner) Run(ctx context.Context, g *graph.Graph[string], source string) (*bellmanford.Result[string], bool, error) {
	key := r.Keyer.RunKey(GraphHash(g), source)
	hooks := observability.Cache()

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	if hit {
		var doc fio.ResultDocument
		if err := json.Unmarshal(data, &doc); err == nil {
			hooks.OnCacheHit(ctx, "run")
			return doc.Result(), true, nil
		}
		r.Logger.Warn("discarding corrupt cache entry", "key", key)
		_ = r.Cache.Delete(ctx, key)
	}
	hooks.OnCacheMiss(ctx, "run")

	res, err := bellmanford.Run(g, source, bellmanford.WithContext(ctx), bellmanford.WithLogger(r.Logger))
	if err != nil {
		return nil, false, err
	}

	data, err = json.Marshal(fio.NewResultDocument(res))
	if err != nil {
		r.Logger.Warn("cannot encode result for cache", "error", err)
		return res, false, nil
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return res, false, nil
	}
	hooks.OnCacheSet(ctx, "run", len(data))
	return res, false, nil
}

// Matrix returns the adjacency matrix document of g, reporting whether it
// came from the cache.
func (r *Runner) Matrix(ctx context.Context, g *graph.Graph[string]) (fio.MatrixDocument, bool) {
	key := r.Keyer.MatrixKey(GraphHash(g))
	hooks := observability.Cache()

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	if hit {
		var doc fio.MatrixDocument
		if err := json.Unmarshal(data, &doc); err == nil {
			hooks.OnCacheHit(ctx, "matrix")
			return doc, true
		}
		_ = r.Cache.Delete(ctx, key)
	}
	hooks.OnCacheMiss(ctx, "matrix")

	doc := fio.NewMatrixDocument(matrix.Project(g))
	if data, err = json.Marshal(doc); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "error", err)
		} else {
			hooks.OnCacheSet(ctx, "matrix", len(data))
		}
	}
	return doc, false
}
