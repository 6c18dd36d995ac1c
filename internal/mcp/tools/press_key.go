package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
)

type PressKeyHandler struct {
	Backend automation.Backend
}

func (h *PressKeyHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	key, err := requireString(args, "key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	modifiers := stringSliceArg(args, "modifiers")
	var pressed string
	if len(modifiers) > 0 {
		// Modifiers are lowercased; the primary key keeps its casing.
		sequence := make([]string, 0, len(modifiers)+1)
		for _, m := range modifiers {
			sequence = append(sequence, strings.ToLower(m))
		}
		sequence = append(sequence, key)
		if err := h.Backend.Hotkey(sequence); err != nil {
			return backendFailure(err)
		}
		pressed = strings.Join(sequence, " + ")
	} else {
		if err := h.Backend.PressKey(key); err != nil {
			return backendFailure(err)
		}
		pressed = key
	}
	return mcp.NewToolResultText(fmt.Sprintf("Pressed %s.", pressed)), nil
}
