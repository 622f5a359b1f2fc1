// ABOUTME: CLI command for starting the JSON view-model HTTP server.
// ABOUTME: Serves page views under /api and Prometheus metrics under /metrics.
package main

import (
	"github.com/harperreed/broccoli/internal/web"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the view-model HTTP server",
	Long: `Serve dashboard, calendar, history, and workout entry views as JSON
for a thin browser shell.

ROUTES:

  GET    /api/dashboard
  GET    /api/calendar?view=&date=&offset=
  GET    /api/history?category=&exercise=&from=&to=&page=
  GET    /api/categories?assigned=true
  GET    /api/exercise-options?category=
  GET    /api/today?date=
  POST   /api/records
  DELETE /api/records/{id}
  GET    /metrics

EXAMPLES:

  broccoli serve
  broccoli serve --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return web.NewServer(svc, registry).Serve(cmd.Context(), serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
