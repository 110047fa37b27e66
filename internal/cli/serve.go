package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/commitgraph/internal/server"
)

type serveOpts struct {
	addr    string
	redis   string
	noCache bool
}

func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve commit graph rendering over HTTP",
		Long: `Start an HTTP server that renders commit graph layouts.

  POST /render?format=png|svg|json   body: commit layout (JSON or YAML)
  GET  /palette                       branch colors
  GET  /healthz                       liveness

With --redis, rendered artifacts are shared between server instances.`,
		Example: `  commitgraph serve --addr :8080
  commitgraph serve --redis redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") || cfg.Server.Addr == "" {
				cfg.Server.Addr = opts.addr
			}
			if opts.redis != "" {
				cfg.Cache.RedisURL = opts.redis
			}

			runner, err := c.newRunner(ctx, cfg.Cache, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Serving on %s", StyleValue.Render(cfg.Server.Addr))
			if cfg.Cache.RedisURL != "" {
				printDetail("cache: redis")
			}
			return server.New(runner, cfg.Layout, cfg.Server, c.Logger).ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis URL for a shared artifact cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}
