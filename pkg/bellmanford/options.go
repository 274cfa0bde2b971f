package bellmanford

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fordview/pkg/observability"
)

// Options configures a single [Run].
type Options struct {
	// Context is handed to hooks. Run itself never blocks on it.
	Context context.Context

	// Logger receives one debug line per relaxation pass. Nil uses log.Default().
	Logger *log.Logger

	// Hooks receives run start and completion events. Nil uses the hooks
	// registered with observability.SetEngineHooks.
	Hooks observability.EngineHooks
}

// Option is a functional option for [Run].
type Option func(*Options)

// WithContext sets the context passed to engine hooks.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

// WithLogger routes per-pass debug logging to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithHooks overrides the globally registered engine hooks for one run.
func WithHooks(h observability.EngineHooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}

func buildOptions(opts []Option) Options {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Hooks == nil {
		cfg.Hooks = observability.Engine()
	}
	return cfg
}
