package tools

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/roivaz/deskauto/internal/automation"
)

type fakeScreenshotService struct {
	payload    []byte
	err        error
	lastRegion *automation.Region
	called     bool
}

func (f *fakeScreenshotService) Capture(ctx context.Context, region *automation.Region) ([]byte, error) {
	f.called = true
	f.lastRegion = region
	return f.payload, f.err
}

func TestCaptureScreenshotRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	service := &fakeScreenshotService{payload: payload}
	handler := &CaptureScreenshotHandler{Service: service}

	res, err := handler.ToolAdapter(context.Background(), request(map[string]any{}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	url := resultText(t, res)

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(url, prefix) {
		t.Fatalf("result = %q, want %q prefix", url, prefix)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, prefix))
	if err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if string(decoded) != string(payload) {
		t.Fatalf("round trip = %v, want %v", decoded, payload)
	}
	if service.lastRegion != nil {
		t.Fatalf("expected nil region, got %+v", service.lastRegion)
	}
}

func TestCaptureScreenshotForwardsRegion(t *testing.T) {
	service := &fakeScreenshotService{payload: []byte("png")}
	handler := &CaptureScreenshotHandler{Service: service}

	_, err := handler.ToolAdapter(context.Background(), request(map[string]any{
		"region": []any{float64(10), float64(20), float64(300), float64(400)},
	}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	want := automation.Region{X: 10, Y: 20, Width: 300, Height: 400}
	if service.lastRegion == nil || *service.lastRegion != want {
		t.Fatalf("region = %+v, want %+v", service.lastRegion, want)
	}
}

func TestCaptureScreenshotRejectsMalformedRegion(t *testing.T) {
	for _, region := range []any{
		[]any{float64(1), float64(2), float64(3)},
		[]any{},
		"10,20,300,400",
	} {
		service := &fakeScreenshotService{payload: []byte("png")}
		handler := &CaptureScreenshotHandler{Service: service}

		res, err := handler.ToolAdapter(context.Background(), request(map[string]any{"region": region}))
		if err != nil {
			t.Fatalf("ToolAdapter returned error: %v", err)
		}
		if got := errorText(t, res); got != "Region must contain exactly four integers: x, y, width, height." {
			t.Fatalf("unexpected error message %q", got)
		}
		if service.called {
			t.Fatalf("capture should not run for region %v", region)
		}
	}
}

func TestCaptureScreenshotRejectsNonPositiveDimensions(t *testing.T) {
	service := &fakeScreenshotService{payload: []byte("png")}
	handler := &CaptureScreenshotHandler{Service: service}

	res, err := handler.ToolAdapter(context.Background(), request(map[string]any{
		"region": []any{float64(0), float64(0), float64(0), float64(100)},
	}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	if got := errorText(t, res); got != "Region width and height must be positive." {
		t.Fatalf("unexpected error message %q", got)
	}
	if service.called {
		t.Fatalf("capture should not run for invalid region")
	}
}

func TestCaptureScreenshotUnavailableBackend(t *testing.T) {
	service := &fakeScreenshotService{err: automation.ErrUnavailable}
	handler := &CaptureScreenshotHandler{Service: service}

	res, err := handler.ToolAdapter(context.Background(), request(map[string]any{}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	if got := errorText(t, res); !strings.Contains(got, "unavailable") {
		t.Fatalf("unexpected error message %q", got)
	}
}
