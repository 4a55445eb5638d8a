// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCode_Validate(t *testing.T) {
	t.Parallel()

	for _, code := range []ExitCode{ExitSuccess, ExitFailure, ExitUsage, ExitInterrupted, 255} {
		if err := code.Validate(); err != nil {
			t.Errorf("ExitCode(%d).Validate() = %v", code, err)
		}
	}

	for _, code := range []ExitCode{-1, 256, 1000} {
		err := code.Validate()
		if !errors.Is(err, ErrInvalidExitCode) {
			t.Errorf("ExitCode(%d).Validate() = %v, want ErrInvalidExitCode", code, err)
		}
		var codeErr *InvalidExitCodeError
		if !errors.As(err, &codeErr) || codeErr.Value != code {
			t.Errorf("ExitCode(%d).Validate() = %#v", code, err)
		}
	}
}

func TestExitCode_Predicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code          ExitCode
		wantSuccess   bool
		wantInterrupt bool
		wantString    string
	}{
		{code: ExitSuccess, wantSuccess: true, wantString: "0"},
		{code: ExitNoMatch, wantString: "1"},
		{code: ExitUsage, wantString: "2"},
		{code: ExitInterrupted, wantInterrupt: true, wantString: "130"},
	}

	for _, tt := range tests {
		if got := tt.code.IsSuccess(); got != tt.wantSuccess {
			t.Errorf("ExitCode(%d).IsSuccess() = %v", tt.code, got)
		}
		if got := tt.code.IsInterrupt(); got != tt.wantInterrupt {
			t.Errorf("ExitCode(%d).IsInterrupt() = %v", tt.code, got)
		}
		if got := tt.code.String(); got != tt.wantString {
			t.Errorf("ExitCode(%d).String() = %q, want %q", tt.code, got, tt.wantString)
		}
	}
}
