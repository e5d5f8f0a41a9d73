package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagestack/pkg/api"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the solve API server",
		Long: fmt.Sprintf(`Run the solve API server.

The server exposes the solve pipeline over HTTP:

  POST /api/v1/solve   solve an instance, optionally with a page plan
  GET  /healthz        liveness probe
  GET  /version        build information

Results are cached with the same backend as the CLI: a local file cache
by default, or Redis/MongoDB when %s or %s is set.

The server runs until interrupted and drains in-flight requests on
shutdown.`, envRedisURL, envMongoURI),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			server := api.NewServer(runner, c.Logger)
			return server.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
