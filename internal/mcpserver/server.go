// Package mcpserver exposes the dialogue engine and the synthesis backends
// as MCP tools and resources over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

const (
	serverName    = "podcast-generator-google"
	serverVersion = "1.0.0"
)

// New creates and configures the MCP server.
func New() *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
	)

	handlers := NewHandlers()
	tools := ToolDefs()
	s.AddTool(tools[0], handlers.HandleGenerateScript)
	s.AddTool(tools[1], handlers.HandleCreateAudio)
	s.AddTool(tools[2], handlers.HandleConvertScript)

	registerResources(s)

	return s
}

// ServeStdio runs the MCP server over stdin/stdout until the stream closes.
func ServeStdio(s *server.MCPServer) error {
	log.Info().Str("server", serverName).Msg("Starting MCP stdio server")
	return server.ServeStdio(s)
}
