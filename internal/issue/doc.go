// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors and troubleshooting guides.
//
// ActionableError carries the failed operation, the file or value involved and
// suggestions for fixing it. Issue holds a Markdown guide for a class of
// failure, rendered for the terminal with glamour.
package issue
