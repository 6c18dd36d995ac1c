package capture

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

type runner struct {
	Timeout time.Duration
}

// Run executes the capture utility and returns its captured stderr on
// failure so the caller can surface diagnostics.
func (r runner) Run(ctx context.Context, bin string, args ...string) error {
	c := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Start(); err != nil {
		return formatRunError(bin, args, err, stderr.String())
	}
	done := make(chan error, 1)
	go func() { done <- c.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return formatRunError(bin, args, err, stderr.String())
		}
		return nil
	case <-time.After(r.Timeout):
		_ = c.Process.Kill()
		<-done
		return formatRunError(bin, args, fmt.Errorf("command timed out after %s", r.Timeout), stderr.String())
	case <-ctx.Done():
		_ = c.Process.Kill()
		<-done
		return formatRunError(bin, args, ctx.Err(), stderr.String())
	}
}

func formatRunError(bin string, args []string, cause error, stderr string) error {
	cmd := bin + " " + strings.Join(args, " ")
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("%s: %w: %s", cmd, cause, stderr)
	}
	return fmt.Errorf("%s: %w", cmd, cause)
}
