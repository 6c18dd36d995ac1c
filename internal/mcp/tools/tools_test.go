package tools

import (
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
)

// spyBackend records every primitive invocation in order so tests can assert
// on exact call sequences and forwarded values.
type spyBackend struct {
	calls []string
	fail  error
}

func (s *spyBackend) record(format string, a ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, a...))
}

func (s *spyBackend) MoveMouse(x, y int, duration float64) error {
	s.record("move(%d,%d,%.1f)", x, y, duration)
	return s.fail
}

func (s *spyBackend) Click(at *automation.Point, button automation.Button, clicks int, interval, duration float64) error {
	location := "current"
	if at != nil {
		location = fmt.Sprintf("%d,%d", at.X, at.Y)
	}
	s.record("click(%s,%s,%d,%.1f,%.1f)", location, button, clicks, interval, duration)
	return s.fail
}

func (s *spyBackend) PressKey(key string) error {
	s.record("press(%s)", key)
	return s.fail
}

func (s *spyBackend) Hotkey(sequence []string) error {
	s.record("hotkey(%v)", sequence)
	return s.fail
}

func (s *spyBackend) TypeText(text string, interval float64) error {
	s.record("type(%q,%.1f)", text, interval)
	return s.fail
}

func (s *spyBackend) ButtonDown(button automation.Button) error {
	s.record("down(%s)", button)
	return s.fail
}

func (s *spyBackend) ButtonUp(button automation.Button) error {
	s.record("up(%s)", button)
	return s.fail
}

func (s *spyBackend) CaptureScreen(region *automation.Region) ([]byte, error) {
	s.record("capture(%v)", region)
	return []byte("png"), s.fail
}

func request(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected tool error: %+v", res.Content)
	}
	if len(res.Content) == 0 {
		t.Fatalf("result has no content")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return text.Text
}

func errorText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected tool error, got %+v", res.Content)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", res.Content[0])
	}
	return text.Text
}

func assertCalls(t *testing.T, backend *spyBackend, want ...string) {
	t.Helper()
	if len(backend.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", backend.calls, want)
	}
	for i := range want {
		if backend.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, backend.calls[i], want[i])
		}
	}
}
