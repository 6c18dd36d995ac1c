package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
)

type ClickHandler struct {
	Backend automation.Backend
}

func (h *ClickHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	rawButton := stringArg(args, "button", "left")
	button, err := automation.NormalizeButton(rawButton)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rawClicks := intArg(args, "clicks", 1)
	clicks := automation.ClampClicks(rawClicks)
	interval := automation.ClampSeconds(floatArg(args, "interval", 0))
	duration := automation.ClampSeconds(floatArg(args, "duration", 0))

	// The click targets a point only when both coordinates are supplied.
	var at *automation.Point
	x, xOK := optionalInt(args, "x")
	y, yOK := optionalInt(args, "y")
	if xOK && yOK {
		at = &automation.Point{X: x, Y: y}
	}

	if err := h.Backend.Click(at, button, clicks, interval, duration); err != nil {
		return backendFailure(err)
	}

	location := "current position"
	if at != nil {
		location = fmt.Sprintf("(%d, %d)", at.X, at.Y)
	}
	// The message echoes the caller's button casing and click count; only the
	// backend receives the normalized values.
	return mcp.NewToolResultText(fmt.Sprintf("Clicked %s button %d time(s) at %s.", rawButton, rawClicks, location)), nil
}
