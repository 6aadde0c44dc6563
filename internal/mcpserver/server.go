// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the memory engine to LLM clients via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/torvik/muninn/internal/memoryservice"
	"github.com/torvik/muninn/internal/query"
	"github.com/torvik/muninn/internal/storage"
)

// Server wraps the MCP server with Muninn tools.
type Server struct {
	mcp *server.MCPServer
	svc *memoryservice.Service
	src storage.Source
}

// New creates a new MCP server with all Muninn tools registered.
func New(svc *memoryservice.Service, src storage.Source) *Server {
	s := &Server{svc: svc, src: src}

	s.mcp = server.NewMCPServer(
		"Muninn",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_memories",
		mcp.WithDescription("Search memory entries by free text, with optional source, date range, and sort."),
		mcp.WithString("query", mcp.Description("Free-text query (case-insensitive substring)")),
		mcp.WithString("source", mcp.Description("Restrict to one source file, e.g. memory/2024-03-15.md ('all' for no restriction)")),
		mcp.WithString("from", mcp.Description("Inclusive lower date bound, YYYY-MM-DD")),
		mcp.WithString("to", mcp.Description("Inclusive upper date bound, YYYY-MM-DD")),
		mcp.WithString("sort", mcp.Description("Sort order: newest, oldest, title-asc, title-desc")),
	), s.searchMemories)

	s.mcp.AddTool(mcp.NewTool("list_memories",
		mcp.WithDescription("List all memory entries, newest first, with collection meta."),
	), s.listMemories)

	s.mcp.AddTool(mcp.NewTool("read_source",
		mcp.WithDescription("Read the raw text of a memory source file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Source file, e.g. MEMORY.md or memory/2024-03-15.md")),
	), s.readSource)

	// Resource: memory file conventions.
	s.mcp.AddResource(
		mcp.NewResource("muninn://memory-format", "Memory Format",
			mcp.WithResourceDescription("Conventions the memory files follow and how entries are derived from them."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readMemoryFormatResource,
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

func (s *Server) searchMemories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	criteria := query.Criteria{
		Text:       req.GetString("query", ""),
		SourceFile: req.GetString("source", ""),
		From:       req.GetString("from", ""),
		To:         req.GetString("to", ""),
		Sort:       query.Sort(req.GetString("sort", "")),
	}
	entries, err := s.svc.Search(ctx, criteria)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listMemories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := s.svc.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readSource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.Contains(path, "..") {
		return mcp.NewToolResultError(fmt.Sprintf("invalid path: %s", path)), nil
	}
	data, err := s.src.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) readMemoryFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "muninn://memory-format",
			MIMEType: "text/markdown",
			Text:     MemoryFormatContract,
		},
	}, nil
}
