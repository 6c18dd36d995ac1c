//go:build !darwin

package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"

	"github.com/roivaz/deskauto/internal/automation"
	"github.com/roivaz/deskauto/internal/logging"
)

func TestFallbackUnavailableOffDarwin(t *testing.T) {
	svc := New(Config{Logger: logging.New(logr.Discard())})

	_, err := svc.Capture(context.Background(), nil)
	if !errors.Is(err, automation.ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}
