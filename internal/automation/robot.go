package automation

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/kbinani/screenshot"

	"github.com/roivaz/deskauto/internal/logging"
)

// Probe checks once whether the host can drive input automation. The result
// decides between Available and Unavailable dispatch for every tool.
func Probe() error {
	switch runtime.GOOS {
	case "darwin", "windows":
		return nil
	case "linux":
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("%w: no display server detected. Run inside an X11 or Wayland session (set DISPLAY)", ErrUnavailable)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported platform %s", ErrUnavailable, runtime.GOOS)
	}
}

type robotBackend struct {
	opts Options
	log  logging.Logger
}

// NewBackend probes the host and returns the robotgo-based Backend. A nil
// Backend with an ErrUnavailable-wrapped error is returned when the host
// cannot drive automation.
func NewBackend(opts Options, log logging.Logger) (Backend, error) {
	if err := Probe(); err != nil {
		return nil, err
	}
	return &robotBackend{opts: opts, log: log}, nil
}

// guard enforces the fail-safe corner before every action.
func (b *robotBackend) guard() error {
	if !b.opts.FailSafe {
		return nil
	}
	x, y := robotgo.Location()
	if x == 0 && y == 0 {
		return ErrFailSafe
	}
	return nil
}

func (b *robotBackend) settle() {
	if b.opts.Pause > 0 {
		time.Sleep(b.opts.Pause)
	}
}

func (b *robotBackend) MoveMouse(x, y int, duration float64) error {
	if err := b.guard(); err != nil {
		return err
	}
	if duration > 0 {
		robotgo.MoveSmooth(x, y)
	} else {
		robotgo.Move(x, y)
	}
	b.settle()
	return nil
}

func (b *robotBackend) Click(at *Point, button Button, clicks int, interval, duration float64) error {
	if err := b.guard(); err != nil {
		return err
	}
	// duration covers cursor travel to the target, same as MoveMouse.
	if at != nil {
		if duration > 0 {
			robotgo.MoveSmooth(at.X, at.Y)
		} else {
			robotgo.Move(at.X, at.Y)
		}
	}
	for i := 0; i < clicks; i++ {
		if i > 0 && interval > 0 {
			time.Sleep(secondsToDuration(interval))
		}
		robotgo.Click(string(button))
	}
	b.settle()
	return nil
}

func (b *robotBackend) PressKey(key string) error {
	if err := b.guard(); err != nil {
		return err
	}
	if err := robotgo.KeyTap(key); err != nil {
		return fmt.Errorf("key tap %q: %w", key, err)
	}
	b.settle()
	return nil
}

func (b *robotBackend) Hotkey(sequence []string) error {
	if len(sequence) == 0 {
		return fmt.Errorf("%w: empty hotkey sequence", ErrInvalidArgument)
	}
	if err := b.guard(); err != nil {
		return err
	}
	primary := sequence[len(sequence)-1]
	mods := make([]interface{}, 0, len(sequence)-1)
	for _, m := range sequence[:len(sequence)-1] {
		mods = append(mods, m)
	}
	if err := robotgo.KeyTap(primary, mods...); err != nil {
		return fmt.Errorf("hotkey %v: %w", sequence, err)
	}
	b.settle()
	return nil
}

func (b *robotBackend) TypeText(text string, interval float64) error {
	if err := b.guard(); err != nil {
		return err
	}
	if interval <= 0 {
		robotgo.TypeStr(text)
	} else {
		delay := secondsToDuration(interval)
		for _, r := range text {
			robotgo.TypeStr(string(r))
			time.Sleep(delay)
		}
	}
	b.settle()
	return nil
}

func (b *robotBackend) ButtonDown(button Button) error {
	if err := b.guard(); err != nil {
		return err
	}
	if err := robotgo.Toggle(string(button)); err != nil {
		return fmt.Errorf("button down: %w", err)
	}
	b.settle()
	return nil
}

func (b *robotBackend) ButtonUp(button Button) error {
	if err := robotgo.Toggle(string(button), "up"); err != nil {
		return fmt.Errorf("button up: %w", err)
	}
	b.settle()
	return nil
}

func (b *robotBackend) CaptureScreen(region *Region) ([]byte, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("%w: no active displays", ErrUnavailable)
	}
	var bounds image.Rectangle
	if region != nil {
		bounds = image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	} else {
		bounds = screenshot.GetDisplayBounds(0)
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	b.log.Debug("captured screen", "bounds", bounds.String(), "bytes", buf.Len())
	return buf.Bytes(), nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
