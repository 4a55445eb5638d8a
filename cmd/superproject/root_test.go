// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"git-superproject/internal/issue"
	"git-superproject/pkg/types"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "v1.2.0", "abc123", "2026-01-02"
	if got := getVersionString(); got != "v1.2.0 (commit: abc123, built: 2026-01-02)" {
		t.Errorf("getVersionString() = %q", got)
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, true); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	actionable := issue.NewErrorContext().
		WithOperation("save registry").
		WithResource("/tmp/registry.config").
		WithSuggestion("Try --store file").
		Wrap(plain).
		BuildError()
	wrapped := newServiceError(actionable, issue.StoreFailedId)

	got := formatErrorForDisplay(wrapped, false)
	for _, want := range []string{"save registry", "/tmp/registry.config", "Try --store file"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatErrorForDisplay() = %q, missing %q", got, want)
		}
	}
}

func TestPrintError_VerboseRendersIssue(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(t, nil)
	err := newServiceError(errors.New("finder went away"), issue.FinderFailedId)

	var quiet bytes.Buffer
	app.printError(&quiet, err)
	if !strings.Contains(quiet.String(), "finder went away") || strings.Contains(quiet.String(), "See also") {
		t.Errorf("non-verbose output = %q", quiet.String())
	}
	if !strings.Contains(quiet.String(), "  see https://github.com/junegunn/fzf\n") {
		t.Errorf("non-verbose output = %q, want the guide links", quiet.String())
	}

	var bare bytes.Buffer
	app.printError(&bare, newServiceError(errors.New("bad name"), issue.InvalidRepoIdentifierId))
	if strings.Contains(bare.String(), "see ") {
		t.Errorf("non-verbose output = %q, want no links for a guide without any", bare.String())
	}

	app.verbose = true
	app.issueStyle = "notty"
	var loud bytes.Buffer
	app.printError(&loud, err)
	if !strings.Contains(loud.String(), "See also") {
		t.Errorf("verbose output = %q, want the issue guide", loud.String())
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want types.ExitCode
	}{
		{name: "plain error", err: errors.New("boom"), want: exitFailure},
		{name: "usage", err: &ExitError{Code: exitUsage, Err: errors.New("bad repo")}, want: exitUsage},
		{name: "wrapped usage", err: fmt.Errorf("add: %w", &ExitError{Code: exitUsage}), want: exitUsage},
		{name: "out of range", err: &ExitError{Code: 300}, want: exitFailure},
		{name: "success code", err: &ExitError{Code: types.ExitSuccess, Err: errors.New("boom")}, want: exitFailure},
	}

	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("%s: exitCode() = %d, want %d", tt.name, got, tt.want)
		}
	}

	if got := (&ExitError{Code: exitUsage}).Error(); got != "exit status 2" {
		t.Errorf("ExitError.Error() = %q", got)
	}
}

func TestNewApp_Defaults(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{})
	if app.Config == nil || app.NewStore == nil || app.NewFinder == nil || app.Interactive == nil {
		t.Fatalf("NewApp() left a dependency nil: %+v", app)
	}
	if app.stdout == nil || app.stderr == nil || app.logger == nil {
		t.Errorf("NewApp() left an output nil: %+v", app)
	}
}
