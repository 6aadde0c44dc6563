package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/torvik/muninn/internal/memory"
	"github.com/torvik/muninn/internal/memoryservice"
	"github.com/torvik/muninn/internal/models"
	"github.com/torvik/muninn/internal/testutil"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()

	root, src := testutil.TestWorkspace(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loader := memory.NewLoader(src,
		memory.Config{LongTermFile: "MEMORY.md", DailyDir: "memory"},
		logger, memory.WithClock(testutil.FixedClock))
	srv := New(memoryservice.NewService(loader), src)
	return srv, root
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call
	// the handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "search_memories":
		result, err = srv.searchMemories(ctx, req)
	case "list_memories":
		result, err = srv.listMemories(ctx, req)
	case "read_source":
		result, err = srv.readSource(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestSearchMemories(t *testing.T) {
	srv, root := testServer(t)
	testutil.WriteDoc(t, root, "memory/2024-03-15.md", "## Standup\nshipped the widget\n")
	testutil.WriteDoc(t, root, "memory/2024-03-16.md", "## Garden\nweeded the beds\n")

	r := callTool(t, srv, "search_memories", map[string]interface{}{"query": "widget"})
	var entries []models.Entry
	if err := json.Unmarshal([]byte(resultText(r)), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Standup" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestListMemories(t *testing.T) {
	srv, root := testServer(t)
	testutil.WriteDoc(t, root, "MEMORY.md", "## A\nNoted June 1, 2020.\n## B\nb\n")

	r := callTool(t, srv, "list_memories", map[string]interface{}{})
	var res models.LoadResult
	if err := json.Unmarshal([]byte(resultText(r)), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Meta.Total != 2 {
		t.Errorf("total = %d, want 2", res.Meta.Total)
	}
}

func TestReadSource(t *testing.T) {
	srv, root := testServer(t)
	testutil.WriteDoc(t, root, "MEMORY.md", "## A\nraw text\n")

	r := callTool(t, srv, "read_source", map[string]interface{}{"path": "MEMORY.md"})
	if got := resultText(r); got != "## A\nraw text\n" {
		t.Errorf("read result = %q", got)
	}
}

func TestReadSource_Missing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_source", map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing source")
	}
}

func TestReadSource_TraversalRejected(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_source", map[string]interface{}{"path": "../secrets.md"})
	if !r.IsError {
		t.Error("expected error for traversal path")
	}
	if !strings.Contains(resultText(r), "invalid path") {
		t.Errorf("result = %q", resultText(r))
	}
}
