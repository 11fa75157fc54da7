package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wethelder/wethelder/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the JSON HTTP API.

Endpoints:
  POST /api/zoeken      search legal references
  POST /api/vragen      ask a question (answer streams as SSE)
  GET  /api/gezondheid  liveness check

Anonymous callers are limited to a fixed number of questions per
24 hours, accounted per client IP.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, \":8080\")")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := initApp(cmd.Context()); err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = appSettings.Server.ListenAddr
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Search: searchService,
		Ask:    askService,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP server: %w", err)
	}

	return server.Run(cmd.Context(), addr)
}
