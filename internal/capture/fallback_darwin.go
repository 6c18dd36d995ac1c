//go:build darwin

package capture

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/roivaz/deskauto/internal/automation"
)

// fallback shells out to the screencapture utility. The temporary output
// file is removed on every exit path.
func (s *Service) fallback(ctx context.Context, region *automation.Region) ([]byte, error) {
	bin, err := exec.LookPath(s.cfg.UtilityPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not installed or not on PATH", ErrUtilityMissing, s.cfg.UtilityPath)
	}

	tmp, err := os.CreateTemp(s.cfg.TmpDir, "deskauto-capture-*.png")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			s.cfg.Logger.Error(rmErr, "failed to remove capture temp file", "path", path)
		}
	}()

	// -x suppresses the capture sound.
	args := []string{"-x"}
	if region != nil {
		args = append(args, fmt.Sprintf("-R%d,%d,%d,%d", region.X, region.Y, region.Width, region.Height))
	}
	args = append(args, path)

	if err := (runner{Timeout: 30 * time.Second}).Run(ctx, bin, args...); err != nil {
		return nil, fmt.Errorf("screen capture failed: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture output: %w", err)
	}
	s.cfg.Logger.Debug("captured via native utility", "bytes", len(data), "region", region != nil)
	return data, nil
}
