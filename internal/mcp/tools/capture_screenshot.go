package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/deskauto/internal/automation"
	"github.com/roivaz/deskauto/internal/capture"
)

// ScreenshotService captures PNG bytes, optionally restricted to a region.
type ScreenshotService interface {
	Capture(ctx context.Context, region *automation.Region) ([]byte, error)
}

type CaptureScreenshotHandler struct {
	Service ScreenshotService
}

func (h *CaptureScreenshotHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var region *automation.Region
	if raw, ok := args["region"]; ok && raw != nil {
		values, ok := raw.([]any)
		if !ok {
			return mcp.NewToolResultError("Region must contain exactly four integers: x, y, width, height."), nil
		}
		parsed, err := automation.ParseRegion(values)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		region = parsed
	}

	data, err := h.Service.Capture(ctx, region)
	if err != nil {
		if errors.Is(err, automation.ErrUnavailable) || errors.Is(err, capture.ErrUtilityMissing) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(capture.DataURL(data)), nil
}
