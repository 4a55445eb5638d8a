// SPDX-License-Identifier: MPL-2.0

// Package store provides the config-store adapters the registry reads from and
// writes to.
//
// Git shells out to `git config --file <path>` exactly as a user would, so the
// file stays byte-compatible with git's own tooling. File parses and encodes the
// same file format in-process, which needs no git binary and is what the tests
// use. Both list every key as a lowercase "section[.subsection].key=value" line
// and append values without ever replacing existing ones.
package store
