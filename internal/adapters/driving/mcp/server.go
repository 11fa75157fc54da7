package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// serverInstructions is handed to connecting clients during the
// initialize handshake, so an agent knows when to reach for the tool.
const serverInstructions = `WetHelder ontsluit Nederlandse juridische referenties:
wetsartikelen, boetecodes (feitcodes) en jurisprudentie. Gebruik het
gereedschap zoek_referenties voor vragen over Nederlands recht. Elke
resultatenset draagt een betrouwbaarheidslabel; behandel resultaten met
label "low" als niet-geverifieerd.`

// Server exposes the reference search pipeline over the Model Context
// Protocol, as a tool plus browsable catalog resources.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer wires the MCP server from the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "wethelder",
		Version: Version,
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{
			Instructions: serverInstructions,
		}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves MCP over stdio until the context is cancelled. This is
// the transport desktop agents spawn the binary with.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr, for clients that
// connect over the network instead of spawning a process.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
