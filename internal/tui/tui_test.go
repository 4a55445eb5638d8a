// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/glamour/styles"
	"github.com/creack/pty"

	"git-superproject/internal/config"
)

func TestIsInteractive(t *testing.T) {
	t.Parallel()

	if IsInteractive(&bytes.Buffer{}) {
		t.Error("IsInteractive(buffer) = true")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsInteractive(f) {
		t.Error("IsInteractive(regular file) = true")
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if IsInteractive(w) {
		t.Error("IsInteractive(pipe) = true")
	}
}

func TestIsInteractive_Terminal(t *testing.T) {
	t.Parallel()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals not available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if !IsInteractive(tty) {
		t.Error("IsInteractive(tty) = false")
	}
}

func TestGlamourStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme      config.ColorScheme
		interactive bool
		want        string
	}{
		{config.ColorSchemeAuto, true, styles.DarkStyle},
		{config.ColorSchemeDark, true, styles.DarkStyle},
		{config.ColorSchemeLight, true, styles.LightStyle},
		{config.ColorSchemeAuto, false, styles.NoTTYStyle},
		{config.ColorSchemeLight, false, styles.NoTTYStyle},
	}

	for _, tt := range tests {
		if got := GlamourStyle(tt.scheme, tt.interactive); got != tt.want {
			t.Errorf("GlamourStyle(%q, %v) = %q, want %q", tt.scheme, tt.interactive, got, tt.want)
		}
	}
}

func TestNewPalette_PlainWithoutTerminal(t *testing.T) {
	t.Parallel()

	p := NewPalette(config.ColorSchemeDark, false)
	for _, s := range []string{p.Title.Render("tools"), p.Warning.Render("tools"), p.Subtle.Render("tools")} {
		if s != "tools" {
			t.Errorf("Render() = %q, want plain text", s)
		}
	}
}
