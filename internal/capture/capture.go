// Package capture produces PNG screenshots, preferring the automation
// backend and falling back to the native screencapture utility when the
// backend is unavailable.
package capture

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/roivaz/deskauto/internal/automation"
	"github.com/roivaz/deskauto/internal/logging"
)

// ErrUtilityMissing marks an absent native capture binary.
var ErrUtilityMissing = errors.New("screen capture utility not found")

type Config struct {
	// Backend is the primary capture path. Nil when the automation backend
	// is unavailable on this host.
	Backend automation.Backend
	// BackendErr is the probe failure that explains a nil Backend.
	BackendErr error
	// UtilityPath names the native capture binary used by the fallback.
	UtilityPath string
	// TmpDir overrides the directory for transient capture files. Empty
	// means the system default.
	TmpDir string
	Logger logging.Logger
}

type Service struct {
	cfg Config
}

func New(cfg Config) *Service {
	if cfg.UtilityPath == "" {
		cfg.UtilityPath = "screencapture"
	}
	return &Service{cfg: cfg}
}

// Capture returns PNG bytes for the whole screen, or for region when
// non-nil. The backend path is used when available; otherwise the native
// utility fallback.
func (s *Service) Capture(ctx context.Context, region *automation.Region) ([]byte, error) {
	if s.cfg.Backend != nil {
		return s.cfg.Backend.CaptureScreen(region)
	}
	data, err := s.fallback(ctx, region)
	if err != nil && s.cfg.BackendErr != nil {
		return nil, fmt.Errorf("%v; fallback also failed: %w", s.cfg.BackendErr, err)
	}
	return data, err
}

// DataURL wraps PNG bytes in a data:image/png;base64 URL.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
