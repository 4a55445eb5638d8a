// SPDX-License-Identifier: MPL-2.0

// Package registry maintains the mapping from superproject names to the set of
// repository identifiers that belong to each superproject.
//
// Entries are persisted in a git-style config file as multi-valued keys:
//
//	[superproject "tools"]
//		repo = acme/cli
//		repo = acme/lib
//
// which a store lists as "superproject.tools.repo=acme/cli" lines. The package
// never talks to the file directly: it consumes a Lister to build a Registry
// (Load) and an Appender to write it back (Serialize, Rebuild). Because the store
// only supports additive single-key writes, Rebuild synthesizes replace semantics
// by moving the previous file aside, replaying every entry, and reattaching the
// comment lines of the previous file.
//
// Edit drives the interactive reconciliation loop: an external finder is offered
// the candidate identifiers, and every identifier it returns toggles membership
// until the finder returns nothing.
package registry
