// Package server wires the tools and the prompt into an MCP server and
// serves it over the selected transport.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/wxyzh/table-mcp-server/internal/prompt"
	"github.com/wxyzh/table-mcp-server/internal/table"
	"github.com/wxyzh/table-mcp-server/internal/tools"
)

type TableServer struct {
	server *server.MCPServer
	logger *logrus.Logger
}

func New(version string, store *table.Store, logger *logrus.Logger) *TableServer {
	s := &TableServer{logger: logger}
	s.server = server.NewMCPServer(
		"table-mcp-server",
		version,
		server.WithPromptCapabilities(false),
		// a panicking tool call must not take down the server
		server.WithRecovery(),
	)
	tools.AddQueryTool(s.server, store)
	tools.AddUpdateItemTool(s.server, store)
	tools.AddDeleteItemTool(s.server, store)
	tools.AddListColumnsTool(s.server, store)
	prompt.AddTableWorkflowPrompt(s.server)
	return s
}

// Start serves the protocol over stdin/stdout.
func (s *TableServer) Start() error {
	s.logger.Info("Server running with stdio transport")
	return server.ServeStdio(s.server)
}

// StartSSE serves the protocol over HTTP server-sent events on host:port.
func (s *TableServer) StartSSE(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	s.logger.WithField("addr", addr).Info("Server running with SSE transport")
	sse := server.NewSSEServer(s.server,
		server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
	)
	return sse.Start(addr)
}
