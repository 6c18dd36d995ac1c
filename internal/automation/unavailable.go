package automation

// UnavailableBackend returns a Backend whose every operation fails with the
// probe error, so tools degrade to a clear message instead of crashing when
// the host cannot drive automation.
func UnavailableBackend(reason error) Backend {
	return unavailableBackend{reason: reason}
}

type unavailableBackend struct {
	reason error
}

func (u unavailableBackend) MoveMouse(int, int, float64) error { return u.reason }

func (u unavailableBackend) Click(*Point, Button, int, float64, float64) error { return u.reason }

func (u unavailableBackend) PressKey(string) error { return u.reason }

func (u unavailableBackend) Hotkey([]string) error { return u.reason }

func (u unavailableBackend) TypeText(string, float64) error { return u.reason }

func (u unavailableBackend) ButtonDown(Button) error { return u.reason }

func (u unavailableBackend) ButtonUp(Button) error { return u.reason }

func (u unavailableBackend) CaptureScreen(*Region) ([]byte, error) { return nil, u.reason }
