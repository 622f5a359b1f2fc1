// ABOUTME: MCP server setup for the broccoli workout tracker.
// ABOUTME: Wraps the MCP server around the page service and its backend.
package mcp

import (
	"context"
	"time"

	"github.com/harperreed/broccoli/internal/pages"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with page service access.
type Server struct {
	mcpServer *mcp.Server
	svc       *pages.Service
	now       func() time.Time
}

// NewServer creates a new MCP server over svc.
func NewServer(svc *pages.Service, version string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "broccoli",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
