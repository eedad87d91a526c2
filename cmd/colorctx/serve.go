package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/colorctx/internal/config"
	"github.com/vango-dev/colorctx/pkg/demo"
	"github.com/vango-dev/colorctx/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		dir  string
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live development host",
		Long: `Serve mounts the demo and serves it over HTTP. Clicks and context
menus in the browser are forwarded to the host, and every connected page
is updated over a websocket after each write.

Examples:
  colorctx serve
  colorctx serve --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))

			h := server.New(server.Config{
				Logger: logger,
				Pretty: cfg.Dev.Pretty,
				App: []demo.Option{
					demo.WithInitial(cfg.Initial),
					demo.WithSwatchSize(cfg.SwatchSize),
				},
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "  colorctx serving on http://%s\n", cfg.Addr())
			return h.ListenAndServe(ctx, cfg.Addr())
		},
	}

	cmd.Flags().StringVarP(&dir, "config", "c", ".", "Directory containing colorctx.json")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from colorctx.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from colorctx.json)")

	return cmd
}
