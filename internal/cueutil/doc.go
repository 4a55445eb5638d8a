// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against an embedded schema.
//
// A document is compiled, unified with one definition of the schema,
// validated and decoded:
//
//	result, err := cueutil.ParseAndDecode[map[string]any](
//	    schemaBytes,
//	    data,
//	    "#Config",
//	    cueutil.WithFilename(path),
//	    cueutil.WithConcrete(false),
//	)
//
// Errors carry the file name and the JSON path of the offending field.
package cueutil
