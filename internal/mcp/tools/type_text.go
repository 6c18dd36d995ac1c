package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
)

type TypeTextHandler struct {
	Backend automation.Backend
}

func (h *TypeTextHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	text, ok := args["text"].(string)
	if !ok {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	interval := automation.ClampSeconds(floatArg(args, "interval", 0))
	pressEnter := boolArg(args, "press_enter", false)

	if err := h.Backend.TypeText(text, interval); err != nil {
		return backendFailure(err)
	}
	if pressEnter {
		if err := h.Backend.PressKey("enter"); err != nil {
			return backendFailure(err)
		}
		return mcp.NewToolResultText("Typed text and pressed Enter successfully."), nil
	}
	return mcp.NewToolResultText("Typed text successfully."), nil
}
