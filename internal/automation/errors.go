package automation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed tool input rejected before any
	// backend call. Match with errors.Is; the message carries no prefix so
	// it can be surfaced to the caller verbatim.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable marks a backend or platform capability that is absent
	// on this host.
	ErrUnavailable = errors.New("automation backend unavailable")

	// ErrFailSafe is returned when the fail-safe corner aborts an action.
	ErrFailSafe = errors.New("fail-safe triggered: cursor in top-left corner")
)

type invalidArgumentError struct {
	msg string
}

func (e *invalidArgumentError) Error() string { return e.msg }

func (e *invalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// InvalidArgumentf builds an error that matches ErrInvalidArgument but whose
// text is exactly the formatted message.
func InvalidArgumentf(format string, a ...any) error {
	return &invalidArgumentError{msg: fmt.Sprintf(format, a...)}
}
