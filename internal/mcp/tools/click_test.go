package tools

import (
	"context"
	"testing"
)

func TestClickAtPoint(t *testing.T) {
	backend := &spyBackend{}
	handler := &ClickHandler{Backend: backend}

	res, err := handler.ToolAdapter(context.Background(), request(map[string]any{
		"x": float64(10), "y": float64(20), "button": "RIGHT", "clicks": float64(2),
	}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	// The backend gets the normalized button; the message echoes the
	// caller's casing.
	if got := resultText(t, res); got != "Clicked RIGHT button 2 time(s) at (10, 20)." {
		t.Fatalf("unexpected message %q", got)
	}
	assertCalls(t, backend, "click(10,20,right,2,0.0,0.0)")
}

func TestClickDefaultsToCurrentPosition(t *testing.T) {
	backend := &spyBackend{}
	handler := &ClickHandler{Backend: backend}

	res, err := handler.ToolAdapter(context.Background(), request(map[string]any{}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	if got := resultText(t, res); got != "Clicked left button 1 time(s) at current position." {
		t.Fatalf("unexpected message %q", got)
	}
	assertCalls(t, backend, "click(current,left,1,0.0,0.0)")
}

func TestClickIgnoresLoneCoordinate(t *testing.T) {
	backend := &spyBackend{}
	handler := &ClickHandler{Backend: backend}

	res, err := handler.ToolAdapter(context.Background(), request(map[string]any{"x": float64(10)}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	if got := resultText(t, res); got != "Clicked left button 1 time(s) at current position." {
		t.Fatalf("unexpected message %q", got)
	}
	assertCalls(t, backend, "click(current,left,1,0.0,0.0)")
}

func TestClickClampsValues(t *testing.T) {
	backend := &spyBackend{}
	handler := &ClickHandler{Backend: backend}

	_, err := handler.ToolAdapter(context.Background(), request(map[string]any{
		"clicks": float64(0), "interval": float64(-1), "duration": float64(-0.5),
	}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	assertCalls(t, backend, "click(current,left,1,0.0,0.0)")
}

func TestClickForwardsClickCount(t *testing.T) {
	backend := &spyBackend{}
	handler := &ClickHandler{Backend: backend}

	_, err := handler.ToolAdapter(context.Background(), request(map[string]any{"clicks": float64(5)}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	assertCalls(t, backend, "click(current,left,5,0.0,0.0)")
}

func TestClickRejectsInvalidButton(t *testing.T) {
	backend := &spyBackend{}
	handler := &ClickHandler{Backend: backend}

	res, err := handler.ToolAdapter(context.Background(), request(map[string]any{"button": "center"}))
	if err != nil {
		t.Fatalf("ToolAdapter returned error: %v", err)
	}
	if got := errorText(t, res); got != "Button must be 'left', 'right', or 'middle'." {
		t.Fatalf("unexpected error message %q", got)
	}
	if len(backend.calls) != 0 {
		t.Fatalf("expected no backend calls, got %v", backend.calls)
	}
}
