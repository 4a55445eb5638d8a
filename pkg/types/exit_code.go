// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared across packages.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Exit statuses used by the CLI and expected from finder commands.
const (
	ExitSuccess ExitCode = 0
	// ExitFailure reports a store, finder or configuration failure.
	ExitFailure ExitCode = 1
	// ExitUsage reports an invalid argument such as a malformed repository identifier.
	ExitUsage ExitCode = 2
	// ExitNoMatch is what fzf-like finders return when nothing was selected.
	ExitNoMatch ExitCode = 1
	// ExitInterrupted is the status of a process ended by SIGINT.
	ExitInterrupted ExitCode = 130
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode is a process exit status in the POSIX range 0-255.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside 0-255.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d is outside 0-255", e.Value)
}

func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate reports an InvalidExitCodeError for values a process cannot return.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess reports whether c is ExitSuccess.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// IsInterrupt reports whether c is ExitInterrupted.
func (c ExitCode) IsInterrupt() bool { return c == ExitInterrupted }

// String returns the decimal form of c.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
