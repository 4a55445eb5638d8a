// SPDX-License-Identifier: MPL-2.0

package finder

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCommand_Find(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		template   string
		candidates []string
		want       string
	}{
		{
			name:       "first candidate",
			template:   `read -r first; echo "$first"`,
			candidates: []string{"a/b", "c/d"},
			want:       "a/b\n",
		},
		{
			name:       "second candidate",
			template:   `read -r first; read -r second; echo "$second"`,
			candidates: []string{"a/b", "c/d"},
			want:       "c/d\n",
		},
		{
			name:     "environment expansion",
			template: `echo "$PICK"`,
			want:     "x/y\n",
		},
		{
			name:     "no output",
			template: "true",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(tt.template)
			c.Env = []string{"PICK=x/y"}
			got, err := c.Find(context.Background(), tt.candidates)
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Find() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_ExitCodes(t *testing.T) {
	t.Parallel()

	for _, template := range []string{"exit 1", "exit 130"} {
		got, err := New(template).Find(context.Background(), nil)
		if err != nil || len(got) != 0 {
			t.Errorf("Find(%q) = %q, %v, want empty selection", template, got, err)
		}
	}

	var stderr bytes.Buffer
	c := New("echo oops >&2; exit 2")
	c.Stderr = &stderr
	if _, err := c.Find(context.Background(), nil); err == nil || !strings.Contains(err.Error(), "status 2") {
		t.Errorf("Find(exit 2) error = %v, want exit status error", err)
	}
	if !strings.Contains(stderr.String(), "oops") {
		t.Errorf("stderr = %q, want finder stderr passed through", stderr.String())
	}

	strict := &Command{Template: "exit 1"}
	if _, err := strict.Find(context.Background(), nil); err == nil {
		t.Error("Find(exit 1) without quiet exit codes returned nil error")
	}
}

func TestCommand_Validate(t *testing.T) {
	t.Parallel()

	if err := New("   ").Validate(); !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("Validate(blank) = %v, want ErrEmptyTemplate", err)
	}
	if err := New("fzf --multi 'unterminated").Validate(); err == nil {
		t.Error("Validate(unterminated quote) returned nil error")
	}
	if err := New(DefaultTemplate).Validate(); err != nil {
		t.Errorf("Validate(default) = %v", err)
	}
}
