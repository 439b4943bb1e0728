// ABOUTME: MCP server setup for the nosh food journal.
// ABOUTME: Wraps the MCP server with the journal store connection.
package mcp

import (
	"context"

	"github.com/harperreed/nosh/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     *storage.Store
}

// NewServer creates a new MCP server over the given store.
func NewServer(store *storage.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "nosh",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
