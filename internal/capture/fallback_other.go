//go:build !darwin

package capture

import (
	"context"
	"fmt"
	"runtime"

	"github.com/roivaz/deskauto/internal/automation"
)

// The native capture fallback only exists on macOS.
func (s *Service) fallback(ctx context.Context, region *automation.Region) ([]byte, error) {
	return nil, fmt.Errorf("%w: native capture fallback is not supported on %s", automation.ErrUnavailable, runtime.GOOS)
}
