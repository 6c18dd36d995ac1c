// Package automation abstracts the OS input-automation backend used by the
// MCP tools. The backend is probed once at startup; every operation consults
// the probe result before dispatching so a missing backend produces an
// actionable error instead of a crash on first use.
package automation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Button is a canonicalized mouse button name.
type Button string

const (
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
)

// NormalizeButton lowercases the input and validates it against the three
// supported buttons.
func NormalizeButton(name string) (Button, error) {
	switch Button(strings.ToLower(name)) {
	case ButtonLeft:
		return ButtonLeft, nil
	case ButtonRight:
		return ButtonRight, nil
	case ButtonMiddle:
		return ButtonMiddle, nil
	default:
		return "", InvalidArgumentf("Button must be 'left', 'right', or 'middle'.")
	}
}

// Region is a rectangular screen area.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ParseRegion converts a decoded JSON array into a Region. Exactly four
// numeric elements are required and width/height must be strictly positive.
// Numeric strings are accepted alongside JSON numbers.
func ParseRegion(values []any) (*Region, error) {
	if len(values) != 4 {
		return nil, InvalidArgumentf("Region must contain exactly four integers: x, y, width, height.")
	}
	ints := make([]int, 4)
	for i, v := range values {
		n, err := toInt(v)
		if err != nil {
			return nil, InvalidArgumentf("Region must contain exactly four integers: x, y, width, height.")
		}
		ints[i] = n
	}
	r := &Region{X: ints[0], Y: ints[1], Width: ints[2], Height: ints[3]}
	if r.Width <= 0 || r.Height <= 0 {
		return nil, InvalidArgumentf("Region width and height must be positive.")
	}
	return r, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}

// ClampSeconds clamps a duration or interval to non-negative seconds.
func ClampSeconds(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	return seconds
}

// ClampClicks clamps a click count to at least one.
func ClampClicks(clicks int) int {
	if clicks < 1 {
		return 1
	}
	return clicks
}

// Options is the process-wide backend configuration. It is built once at
// startup and never mutated afterwards.
type Options struct {
	// FailSafe aborts any action while the cursor sits in the top-left
	// corner of the primary display.
	FailSafe bool
	// Pause is the delay inserted after every backend primitive.
	Pause time.Duration
}

// DefaultOptions mirrors the conventional automation defaults: fail-safe on,
// 50ms between actions.
func DefaultOptions() Options {
	return Options{FailSafe: true, Pause: 50 * time.Millisecond}
}

// Backend supplies the desktop input and capture primitives the tools
// delegate to. Durations and intervals are seconds, already clamped by the
// caller.
type Backend interface {
	// MoveMouse moves the cursor to (x, y), smoothly over duration seconds
	// when duration is positive.
	MoveMouse(x, y int, duration float64) error
	// Click presses button clicks times. When at is non-nil the click
	// happens there, otherwise at the current cursor position.
	Click(at *Point, button Button, clicks int, interval, duration float64) error
	// PressKey taps a single named key.
	PressKey(key string) error
	// Hotkey presses the chord described by sequence: zero or more
	// modifiers followed by the primary key, in order.
	Hotkey(sequence []string) error
	// TypeText types text character by character with interval seconds
	// between characters.
	TypeText(text string, interval float64) error
	// ButtonDown presses and holds a mouse button.
	ButtonDown(button Button) error
	// ButtonUp releases a held mouse button.
	ButtonUp(button Button) error
	// CaptureScreen returns a PNG of the whole screen, or of region when
	// non-nil.
	CaptureScreen(region *Region) ([]byte, error)
}

// Point is an absolute screen coordinate.
type Point struct {
	X int
	Y int
}
