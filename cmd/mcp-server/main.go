package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/deskauto/internal/config"
	"github.com/roivaz/deskauto/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "Desktop automation MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("transport", config.TransportStdio, "MCP transport: stdio or http")
	root.PersistentFlags().String("host", "127.0.0.1", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().Bool("fail-safe", true, "Abort actions while the cursor sits in the top-left corner")
	root.PersistentFlags().Int("action-pause-ms", 50, "Pause between automation actions in milliseconds")
	root.PersistentFlags().String("capture-utility-path", "screencapture", "Native screen capture binary used when the backend is unavailable")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	transport := config.Transport()
	if err := config.ValidateTransport(transport); err != nil {
		return err
	}

	srv := mcp.New(mcp.DefaultConfig())

	if transport == config.TransportStdio {
		return srv.ServeStdio()
	}

	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
