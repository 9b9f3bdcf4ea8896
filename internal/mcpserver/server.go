// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes page lookups for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/leaflet/internal/resolver"
)

const formatURI = "leaflet://page-format"

// Server wraps the MCP server with leaflet tools.
type Server struct {
	mcp *server.MCPServer
	res *resolver.Resolver
}

// New creates a new MCP server with all tools registered.
func New(res *resolver.Resolver, version string) *Server {
	s := &Server{res: res}

	s.mcp = server.NewMCPServer(
		"Leaflet",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_page",
		mcp.WithDescription("Fetch a page by exact, case-sensitive name. "+
			"Returns the page as JSON with its blocks in order; each block has id, type and data."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Page name (e.g. home)")),
	), s.getPage)

	s.mcp.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List the names of all pages, one per line."),
	), s.listPages)

	s.mcp.AddTool(mcp.NewTool("get_page_format",
		mcp.WithDescription("Returns the YAML page file format used by the content directory."),
	), s.getPageFormat)

	s.mcp.AddResource(
		mcp.NewResource(formatURI, "Page Format",
			mcp.WithResourceDescription("YAML format of page files."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readPageFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getPage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	view, ok := s.res.ResolveView(ctx, name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("page not found: %s", name)), nil
	}
	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listPages(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := s.res.PageNames(ctx)
	if len(names) == 0 {
		return mcp.NewToolResultText("no pages"), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) getPageFormat(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(PageFormatContract), nil
}

func (s *Server) readPageFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      formatURI,
			MIMEType: "text/markdown",
			Text:     PageFormatContract,
		},
	}, nil
}
