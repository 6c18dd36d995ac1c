package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
)

type DragAndDropHandler struct {
	Backend automation.Backend
}

func (h *DragAndDropHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	coords := make(map[string]int, 4)
	for _, key := range []string{"start_x", "start_y", "end_x", "end_y"} {
		v, err := requireInt(args, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		coords[key] = v
	}

	button, err := automation.NormalizeButton(stringArg(args, "button", "left"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	duration := automation.ClampSeconds(floatArg(args, "duration", 0.5))

	// Press/move/release runs strictly in order. A failure after ButtonDown
	// leaves the button held; no release is attempted on error.
	if err := h.Backend.MoveMouse(coords["start_x"], coords["start_y"], 0); err != nil {
		return backendFailure(err)
	}
	if err := h.Backend.ButtonDown(button); err != nil {
		return backendFailure(err)
	}
	if err := h.Backend.MoveMouse(coords["end_x"], coords["end_y"], duration); err != nil {
		return backendFailure(err)
	}
	if err := h.Backend.ButtonUp(button); err != nil {
		return backendFailure(err)
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Dragged from (%d, %d) to (%d, %d) using the %s button.",
		coords["start_x"], coords["start_y"], coords["end_x"], coords["end_y"], button,
	)), nil
}
