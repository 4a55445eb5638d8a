// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"io"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"git-superproject/internal/config"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// IsInteractive returns true if w is connected to a terminal.
// Buffers, pipes and regular files are not interactive.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GlamourStyle returns the glamour style for scheme. "auto" resolves to the
// dark style on a terminal and to plain text otherwise.
func GlamourStyle(scheme config.ColorScheme, interactive bool) string {
	switch {
	case !interactive:
		return styles.NoTTYStyle
	case scheme == config.ColorSchemeLight:
		return styles.LightStyle
	default:
		return styles.DarkStyle
	}
}

// Palette holds the lipgloss styles used for command output.
type Palette struct {
	Title   lipgloss.Style
	Name    lipgloss.Style
	Count   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Subtle  lipgloss.Style
}

// NewPalette returns the styles for scheme. Without a terminal every style is
// plain so that piped output carries no escape sequences.
func NewPalette(scheme config.ColorScheme, interactive bool) Palette {
	if !interactive {
		plain := lipgloss.NewStyle()
		return Palette{Title: plain, Name: plain, Count: plain, Success: plain, Warning: plain, Subtle: plain}
	}

	accent, subtle := lipgloss.Color("#7C3AED"), lipgloss.Color("#6B7280")
	if scheme == config.ColorSchemeLight {
		accent, subtle = lipgloss.Color("#5B21B6"), lipgloss.Color("#4B5563")
	}
	return Palette{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Name:    lipgloss.NewStyle().Foreground(accent),
		Count:   lipgloss.NewStyle().Foreground(subtle),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Subtle:  lipgloss.NewStyle().Foreground(subtle),
	}
}
