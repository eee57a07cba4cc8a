package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fenwick/jot/internal/noteservice"
	"github.com/fenwick/jot/internal/testutil"
)

func testServer(t *testing.T) (*Server, *noteservice.Service) {
	t.Helper()
	svc := noteservice.NewService(testutil.TestStore(t))
	return New(svc), svc
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "create_note":
		result, err = srv.createNote(ctx, req)
	case "update_note":
		result, err = srv.updateNote(ctx, req)
	case "delete_note":
		result, err = srv.deleteNote(ctx, req)
	case "search_notes":
		result, err = srv.searchNotes(ctx, req)
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

func TestCreateAndReadNote(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "create_note", map[string]interface{}{
		"title":   "Standup",
		"content": "Discussed the release.",
		"tags":    "meeting, work",
	})
	text := resultText(r)
	if !strings.HasPrefix(text, "created: note-") {
		t.Fatalf("create result = %q", text)
	}
	noteID := strings.TrimPrefix(text, "created: ")

	r = callTool(t, srv, "read_note", map[string]interface{}{"id": noteID})
	text = resultText(r)
	if !strings.Contains(text, "Standup") || !strings.Contains(text, "meeting") {
		t.Errorf("read result = %q", text)
	}
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "create_note", map[string]interface{}{
		"title":   "",
		"content": "x",
	})
	if !r.IsError {
		t.Error("expected error for empty title")
	}
}

func TestUpdateNote(t *testing.T) {
	srv, svc := testServer(t)

	n, err := svc.Create(context.Background(), "v1", "body", nil)
	if err != nil {
		t.Fatal(err)
	}

	r := callTool(t, srv, "update_note", map[string]interface{}{
		"id":    n.ID,
		"title": "v2",
	})
	if r.IsError {
		t.Fatalf("update errored: %q", resultText(r))
	}

	got, err := svc.Get(context.Background(), n.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "v2" || got.Content != "body" {
		t.Errorf("note after update = %+v", got)
	}
}

func TestDeleteNote(t *testing.T) {
	srv, svc := testServer(t)

	n, err := svc.Create(context.Background(), "bye", "", nil)
	if err != nil {
		t.Fatal(err)
	}

	r := callTool(t, srv, "delete_note", map[string]interface{}{"id": n.ID})
	if r.IsError {
		t.Fatalf("delete errored: %q", resultText(r))
	}

	r = callTool(t, srv, "read_note", map[string]interface{}{"id": n.ID})
	if !r.IsError {
		t.Error("expected error reading deleted note")
	}
}

func TestReadNoteMissing(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "read_note", map[string]interface{}{"id": "note-nope"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}

func TestListNotes(t *testing.T) {
	srv, svc := testServer(t)
	if _, err := svc.Seed(context.Background(), 3); err != nil {
		t.Fatal(err)
	}

	r := callTool(t, srv, "list_notes", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, `"total": 3`) {
		t.Errorf("list result = %q", text)
	}
}

func TestSearchNotes(t *testing.T) {
	srv, svc := testServer(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, "Findable", "contains uniquetoken here", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, "Other", "nothing special", nil); err != nil {
		t.Fatal(err)
	}

	r := callTool(t, srv, "search_notes", map[string]interface{}{"query": "uniquetoken"})
	text := resultText(r)
	if !strings.Contains(text, "Findable") {
		t.Errorf("search result = %q", text)
	}
	if strings.Contains(text, "Other") {
		t.Errorf("search matched too much: %q", text)
	}
}
