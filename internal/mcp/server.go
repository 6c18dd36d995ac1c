package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"desktop-automation-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"capture_screenshot": mcp.NewTool("capture_screenshot",
			mcp.WithDescription("Capture a PNG screenshot of the desktop and return it as a data:image/png;base64 URL. Optionally restricted to a rectangular region."),
			mcp.WithArray("region",
				mcp.Description("Optional capture region as exactly four integers: [x, y, width, height]. Width and height must be positive."),
				mcp.Items(map[string]any{"type": "integer"}),
			),
		),
		"move_mouse": mcp.NewTool("move_mouse",
			mcp.WithDescription("Move the mouse cursor to absolute screen coordinates, optionally animated over a duration."),
			mcp.WithNumber("x",
				mcp.Required(),
				mcp.Description("Target X coordinate in pixels"),
			),
			mcp.WithNumber("y",
				mcp.Required(),
				mcp.Description("Target Y coordinate in pixels"),
			),
			mcp.WithNumber("duration",
				mcp.DefaultNumber(0),
				mcp.Description("Seconds to animate the movement (default: 0, instant). Negative values are treated as 0."),
			),
		),
		"click": mcp.NewTool("click",
			mcp.WithDescription("Click a mouse button. When both x and y are provided the click occurs there, otherwise at the current cursor position."),
			mcp.WithNumber("x",
				mcp.Description("Optional X coordinate; requires y as well"),
			),
			mcp.WithNumber("y",
				mcp.Description("Optional Y coordinate; requires x as well"),
			),
			mcp.WithString("button",
				mcp.DefaultString("left"),
				mcp.Description("Mouse button: 'left', 'right', or 'middle' (case-insensitive)"),
			),
			mcp.WithNumber("clicks",
				mcp.DefaultNumber(1),
				mcp.Description("Number of clicks (minimum 1)"),
			),
			mcp.WithNumber("interval",
				mcp.DefaultNumber(0),
				mcp.Description("Seconds between clicks (default: 0)"),
			),
			mcp.WithNumber("duration",
				mcp.DefaultNumber(0),
				mcp.Description("Seconds to hold each click down (default: 0)"),
			),
		),
		"press_key": mcp.NewTool("press_key",
			mcp.WithDescription("Press a keyboard key, optionally as a chord with modifier keys pressed first."),
			mcp.WithString("key",
				mcp.Required(),
				mcp.Description("Key name to press (e.g. 'enter', 'tab', 'a')"),
			),
			mcp.WithArray("modifiers",
				mcp.Description("Optional ordered modifier keys (e.g. ['ctrl', 'shift']); lowercased before dispatch"),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		"type_text": mcp.NewTool("type_text",
			mcp.WithDescription("Type text character by character, with an optional delay between characters and an optional trailing Enter."),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("Text to type"),
			),
			mcp.WithNumber("interval",
				mcp.DefaultNumber(0),
				mcp.Description("Seconds between characters (default: 0)"),
			),
			mcp.WithBoolean("press_enter",
				mcp.DefaultBool(false),
				mcp.Description("Press Enter after typing (default: false)"),
			),
		),
		"drag_and_drop": mcp.NewTool("drag_and_drop",
			mcp.WithDescription("Drag from start coordinates to end coordinates while holding a mouse button."),
			mcp.WithNumber("start_x",
				mcp.Required(),
				mcp.Description("Drag origin X coordinate"),
			),
			mcp.WithNumber("start_y",
				mcp.Required(),
				mcp.Description("Drag origin Y coordinate"),
			),
			mcp.WithNumber("end_x",
				mcp.Required(),
				mcp.Description("Drop target X coordinate"),
			),
			mcp.WithNumber("end_y",
				mcp.Required(),
				mcp.Description("Drop target Y coordinate"),
			),
			mcp.WithNumber("duration",
				mcp.DefaultNumber(0.5),
				mcp.Description("Seconds for the drag movement (default: 0.5)"),
			),
			mcp.WithString("button",
				mcp.DefaultString("left"),
				mcp.Description("Mouse button to hold: 'left', 'right', or 'middle' (case-insensitive)"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
