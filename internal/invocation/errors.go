// ABOUTME: Invocation errors: validation failures, generation failures, and sentinels
// ABOUTME: Messages here are shown to the user verbatim

package invocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("invalid input")
	// ErrBusy is returned by Submit while a call is in flight.
	ErrBusy = errors.New("a request is already in progress")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("controller closed")
)

const (
	unknownMessage     = "An unknown error occurred."
	imageFailurePrefix = "An error occurred: "
	imageInputMessage  = "Please upload an image and enter a prompt."
)

// ValidationError rejects a submission before any generation call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func textInputError(title string) *ValidationError {
	return &ValidationError{Message: "Please provide input for: " + title}
}

// GenerationError carries a failed generation call and the message shown for it.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string { return e.Message }
func (e *GenerationError) Unwrap() error { return e.Err }

// newGenerationError builds the user-facing message for err. The image
// editor prefixes its messages; a failure without a description becomes
// the generic unknown-error message.
func newGenerationError(err error, timeout time.Duration, prefixed bool) *GenerationError {
	msg := ""
	if err != nil {
		msg = strings.TrimSpace(err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) && timeout > 0 {
		msg = fmt.Sprintf("request timed out after %s", timeout)
	}
	switch {
	case msg == "":
		msg = unknownMessage
	case prefixed:
		msg = imageFailurePrefix + msg
	}
	return &GenerationError{Message: msg, Err: err}
}
