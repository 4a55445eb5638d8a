// SPDX-License-Identifier: MPL-2.0

// Package tui decides how output is presented: whether a writer is an
// interactive terminal, which glamour style renders Markdown guides, and the
// lipgloss styles shared by the commands.
package tui
