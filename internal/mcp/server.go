package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/findgroup/internal/config"
	"github.com/dshills/findgroup/internal/pane"
	"github.com/dshills/findgroup/internal/searcher"
)

const (
	// ServerName is the MCP server name
	ServerName = "findgroup"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	searcher *searcher.Searcher
	panes    *pane.Registry
	defaults config.Config

	// paneMu serialises clear, render and read-back of the shared pane
	paneMu sync.Mutex
}

// NewServer creates a new MCP server instance. cfg supplies the defaults for
// arguments a tool call leaves out.
func NewServer(cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		searcher: searcher.New(),
		panes:    pane.NewRegistry(nil),
		defaults: cfg,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	s.mcp.AddTool(findGroupedTool(), s.handleFindGrouped)
	s.mcp.AddTool(listFunctionsTool(), s.handleListFunctions)
	return nil
}
