package tools

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
)

// backendFailure maps backend errors onto the MCP result channel: conditions
// the caller can act on become tool errors, everything else propagates as a
// protocol-level error.
func backendFailure(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, automation.ErrUnavailable) ||
		errors.Is(err, automation.ErrFailSafe) ||
		errors.Is(err, automation.ErrInvalidArgument) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return nil, err
}

// Tool arguments arrive as decoded JSON, so numbers are float64. The helpers
// below tolerate int as well for callers that construct requests in-process.

func floatArg(args map[string]any, key string, def float64) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func requireInt(args map[string]any, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be provided as an integer", key)
	}
}

func optionalInt(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func stringArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

func requireString(args map[string]any, key string) (string, error) {
	if v, ok := args[key].(string); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s parameter is required", key)
}

func boolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
