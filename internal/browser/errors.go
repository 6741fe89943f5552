package browser

import (
	"errors"
	"fmt"
)

// Browser operations reported in [Error].
const (
	OpLaunch   = "launch"
	OpNavigate = "navigate"
	OpHTML     = "html"
	OpEvaluate = "evaluate"
	OpWait     = "wait"
	OpClose    = "close"
)

var (
	// ErrWaitTimeout is returned by Page.WaitFor when the predicate never
	// became true within its own timeout.
	ErrWaitTimeout = errors.New("timed out waiting for page condition")

	// ErrScriptException is returned when a page script throws.
	ErrScriptException = errors.New("page script threw an exception")

	// ErrUnknownDriver is returned by NewLauncher for unsupported drivers.
	ErrUnknownDriver = errors.New("unknown browser driver")
)

// Error reports a failed browser operation.
type Error struct {
	Op  string
	Err error
}

func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("browser %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
