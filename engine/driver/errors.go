package driver

import (
	"errors"
	"fmt"
)

// ErrNullTexture is carried by the precondition raised when a texture parameter holds no texture.
var ErrNullTexture = errors.New("texture reference is nil")

// ErrAlreadyInitialized is returned by Init when a device is already installed.
var ErrAlreadyInitialized = errors.New("driver: already initialized")

// DriverError reports a failure returned by the graphics driver for one operation.
// It is recoverable: the frame that produced it is abandoned and the caller decides what to do.
type DriverError struct {
	// Op names the driver operation that failed, e.g. "draw" or "set uniform glow_ViewMatrix".
	Op string
	// Err is the error returned by the backend.
	Err error
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("driver: %s: %v", e.Op, e.Err)
}

func (e *DriverError) Unwrap() error {
	return e.Err
}

// Wrap returns nil if err is nil, err itself if it already is a *DriverError,
// and a new *DriverError for op otherwise.
//
// Parameters:
//   - op: the operation that produced err
//   - err: the backend error
//
// Returns:
//   - error: the wrapped error, or nil
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *DriverError
	if errors.As(err, &de) {
		return err
	}
	return &DriverError{Op: op, Err: err}
}

// PreconditionError describes a violated API contract: a nil collaborator,
// an unknown identifier, or a nil texture value. It is raised with panic and
// is never returned as an error.
type PreconditionError struct {
	Msg string
	Err error
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("precondition failed: %s: %v", e.Msg, e.Err)
	}
	return "precondition failed: " + e.Msg
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Require panics with a *PreconditionError when cond is false.
//
// Parameters:
//   - cond: the precondition that must hold
//   - format: message format describing the precondition
//   - args: format arguments
func Require(cond bool, format string, args ...any) {
	if !cond {
		panic(&PreconditionError{Msg: fmt.Sprintf(format, args...)})
	}
}
