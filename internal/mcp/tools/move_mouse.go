package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
)

type MoveMouseHandler struct {
	Backend automation.Backend
}

func (h *MoveMouseHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	x, err := requireInt(args, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := requireInt(args, "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	duration := automation.ClampSeconds(floatArg(args, "duration", 0))

	if err := h.Backend.MoveMouse(x, y, duration); err != nil {
		return backendFailure(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Mouse moved to (%d, %d).", x, y)), nil
}
