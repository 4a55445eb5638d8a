// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for git-superproject.
//
// Every command is built by NewRootCommand from an App, which carries the
// configuration provider, store and finder factories and output streams so
// that tests can replace each of them.
package cmd
