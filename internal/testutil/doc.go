// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers that fail the test on error instead
// of returning it: environment and home directory overrides, working directory
// changes and file fixtures.
package testutil
