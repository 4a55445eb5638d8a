// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"git-superproject/pkg/types"
)

const (
	exitFailure = types.ExitFailure
	exitUsage   = types.ExitUsage
)

// ExitError carries a process exit code out of a RunE handler. Execute
// turns it into os.Exit.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %s", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode returns the status Execute exits with for err. An error never
// exits with success, whatever code it carries.
func exitCode(err error) types.ExitCode {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code.Validate() != nil || exitErr.Code.IsSuccess() {
		return exitFailure
	}
	return exitErr.Code
}
