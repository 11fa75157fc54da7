// Package httpapi exposes the search and ask pipelines over a JSON
// HTTP API. Answers stream as server-sent events; errors carry static
// Dutch messages so internals never leak to clients.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wethelder/wethelder/internal/core/ports/driving"
	"github.com/wethelder/wethelder/internal/logger"
)

// Ports aggregates the driving ports required by the HTTP API.
type Ports struct {
	// Search runs the reference search-and-rank pipeline.
	Search driving.SearchService

	// Ask answers questions grounded in the pipeline's references.
	// Optional: without it POST /api/vragen returns 503.
	Ask driving.AskService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return fmt.Errorf("httpapi: search service is required")
	}
	return nil
}

// Server is the HTTP API server.
type Server struct {
	ports  *Ports
	engine *gin.Engine
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{
		ports:  ports,
		engine: engine,
	}

	api := engine.Group("/api")
	api.POST("/zoeken", s.handleSearch)
	api.POST("/vragen", s.handleAsk)
	api.GET("/gezondheid", s.handleHealth)

	return s, nil
}

// Handler returns the underlying HTTP handler, used in tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API on addr until the context is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("HTTP API listening on %s", addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// requestLogger logs one line per request through the shared logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}

// clientIP returns the caller's address for quota accounting. The
// first hop of X-Forwarded-For wins behind a proxy; otherwise gin's
// remote-address fallback is used.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}
