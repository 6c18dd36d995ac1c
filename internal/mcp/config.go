package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/deskauto/internal/automation"
	"github.com/roivaz/deskauto/internal/capture"
	"github.com/roivaz/deskauto/internal/config"
	"github.com/roivaz/deskauto/internal/logging"
	"github.com/roivaz/deskauto/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

// DefaultConfig probes the automation backend once and wires every tool
// handler. When the backend is unavailable the tools stay registered and
// fail fast with the probe reason instead of crashing the process.
func DefaultConfig() Config {
	baseLogger := logging.New(logging.ForLevel(config.LogLevel()))

	opts := automation.DefaultOptions()
	opts.FailSafe = config.FailSafe()
	opts.Pause = config.ActionPause()

	backend, probeErr := automation.NewBackend(opts, baseLogger.WithName("backend"))
	toolBackend := backend
	if probeErr != nil {
		baseLogger.Error(probeErr, "automation backend unavailable, tools will fail fast")
		toolBackend = automation.UnavailableBackend(probeErr)
	} else {
		baseLogger.Info("automation backend ready", "failSafe", opts.FailSafe, "pause", opts.Pause.String())
	}

	captureService := capture.New(capture.Config{
		Backend:     backend,
		BackendErr:  probeErr,
		UtilityPath: config.CaptureUtility(),
		TmpDir:      config.CaptureTmpDir(),
		Logger:      baseLogger.WithName("capture"),
	})

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"capture_screenshot": &tools.CaptureScreenshotHandler{Service: captureService},
			"move_mouse":         &tools.MoveMouseHandler{Backend: toolBackend},
			"click":              &tools.ClickHandler{Backend: toolBackend},
			"press_key":          &tools.PressKeyHandler{Backend: toolBackend},
			"type_text":          &tools.TypeTextHandler{Backend: toolBackend},
			"drag_and_drop":      &tools.DragAndDropHandler{Backend: toolBackend},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
