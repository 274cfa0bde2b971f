package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/fordview/pkg/cache"
	ferrors "github.com/matzehuels/fordview/pkg/errors"
	"github.com/matzehuels/fordview/pkg/server"
	"github.com/matzehuels/fordview/pkg/store"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		backend string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph API over HTTP",
		Long: `Serve the HTTP API. Graphs are kept in the store configured under [store]
(memory, file, redis or mongo); run results are cached under [cache].`,
		Example: "  fordview serve --addr :9090 --store memory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			if addr == "" {
				addr = c.Config.Server.Addr
			}
			opts := c.Config.StoreOptions()
			if backend != "" {
				opts.Backend = backend
			}

			st, err := store.Open(ctx, opts)
			if err != nil {
				return ferrors.Wrap(ferrors.ErrCodeStorage, err, "open %s store: %v", opts.Backend, err)
			}
			defer st.Close()

			ch, err := c.newCache(ctx, noCache)
			if err != nil {
				return ferrors.Wrap(ferrors.ErrCodeStorage, err, "open cache: %v", err)
			}
			defer ch.Close()
			runner := cache.NewRunner(ch, cache.NewScopedKeyer(nil, "api:"), c.Config.Cache.TTL.Duration, logger)

			srv := server.New(st,
				server.WithRunner(runner),
				server.WithLogger(logger),
				server.WithDefaultMode(c.Config.Mode()))

			printInfo(out, "Serving on %s (store: %s)", StyleHighlight.Render(addr), opts.Backend)
			if err := srv.ListenAndServe(ctx, addr); err != nil {
				return err
			}
			printSuccess(out, "Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&backend, "store", "", "store backend: memory, file, redis or mongo")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}
