// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"os"
	"strings"
	"testing"

	cueerrors "cuelang.org/go/cue/errors"
)

const testSchema = `
#Settings: {
	finder?:  string
	store?:   "git" | "file"
	retries?: int & >=0
	ui?: {
		verbose?: bool
	}
}
`

type testSettings struct {
	Finder  string `json:"finder,omitempty"`
	Store   string `json:"store,omitempty"`
	Retries int    `json:"retries,omitempty"`
	UI      struct {
		Verbose bool `json:"verbose,omitempty"`
	} `json:"ui"`
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	t.Run("valid document decodes", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
finder: "fzf --multi --print0"
store: "file"
ui: verbose: true
`)
		result, err := ParseAndDecode[testSettings]([]byte(testSchema), data, "#Settings")
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if result.Value.Finder != "fzf --multi --print0" || result.Value.Store != "file" || !result.Value.UI.Verbose {
			t.Errorf("ParseAndDecode() = %+v", *result.Value)
		}
		if result.Unified.Err() != nil {
			t.Errorf("Unified.Err() = %v", result.Unified.Err())
		}
	})

	t.Run("empty document with optional fields", func(t *testing.T) {
		t.Parallel()

		result, err := ParseAndDecode[map[string]any]([]byte(testSchema), []byte(`{}`), "#Settings", WithConcrete(false))
		if err != nil {
			t.Fatalf("ParseAndDecode() error = %v", err)
		}
		if len(*result.Value) != 0 {
			t.Errorf("ParseAndDecode() = %v, want empty map", *result.Value)
		}
	})

	t.Run("disallowed enum value", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`store: "sqlite"`), "#Settings",
			WithFilename("config.cue"))
		if err == nil {
			t.Fatal("expected error for store outside the enum")
		}
		if !strings.Contains(err.Error(), "config.cue") || !strings.Contains(err.Error(), "store") {
			t.Errorf("error should name the file and the field, got: %v", err)
		}
	})

	t.Run("constraint violation", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`retries: -1`), "#Settings"); err == nil {
			t.Error("expected error for negative retries")
		}
	})

	t.Run("unknown field is rejected by a closed definition", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`editor: "vim"`), "#Settings"); err == nil {
			t.Error("expected error for a field outside #Settings")
		}
	})

	t.Run("syntax error names the default filename", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`finder: "unterminated`), "#Settings")
		if err == nil || !strings.Contains(err.Error(), "<input>") {
			t.Errorf("error = %v, want it to mention <input>", err)
		}
	})

	t.Run("missing definition", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`{}`), "#Missing")
		if err == nil || !strings.Contains(err.Error(), "#Missing") {
			t.Errorf("error = %v, want it to name the missing definition", err)
		}
	})

	t.Run("size limit", func(t *testing.T) {
		t.Parallel()

		data := []byte(strings.Repeat(" ", 200))
		_, err := ParseAndDecode[testSettings]([]byte(testSchema), data, "#Settings", WithMaxFileSize(100))
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
			t.Errorf("error = %v, want size limit error", err)
		}
	})
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}

	for _, original := range []error{errors.New("boom"), os.ErrPermission} {
		err := FormatError(original, "config.cue")
		if !errors.Is(err, original) {
			t.Errorf("FormatError(%v) = %v, want it to wrap a non-CUE error", original, err)
		}
		if !strings.HasPrefix(err.Error(), "config.cue: ") {
			t.Errorf("FormatError() = %q, want the file name first", err.Error())
		}
	}

	_, err := ParseAndDecode[testSettings]([]byte(testSchema), []byte(`store: "sqlite"`), "#Settings",
		WithFilename("config.cue"))
	var cueErr cueerrors.Error
	if !errors.As(err, &cueErr) {
		t.Errorf("ParseAndDecode() error = %#v, want the CUE error reachable", err)
	}
	if !strings.HasPrefix(err.Error(), "config.cue: ") || !strings.Contains(err.Error(), "store") {
		t.Errorf("ParseAndDecode() error = %q, want it flattened to file and path", err.Error())
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{path: nil, want: ""},
		{path: []string{"finder"}, want: "finder"},
		{path: []string{"ui", "color_scheme"}, want: "ui.color_scheme"},
		{path: []string{"repos", "0", "name"}, want: "repos[0].name"},
		{path: []string{"0"}, want: "0"},
	}

	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "config.cue"); err != nil {
		t.Errorf("CheckFileSize(at limit) = %v", err)
	}
	err := CheckFileSize(make([]byte, 101), 100, "config.cue")
	if err == nil {
		t.Fatal("CheckFileSize(over limit) returned nil")
	}
	for _, want := range []string{"config.cue", "101", "100"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("CheckFileSize() error = %q, missing %q", err.Error(), want)
		}
	}
}
