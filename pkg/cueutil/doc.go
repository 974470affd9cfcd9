// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates decoded data against an embedded CUE schema and
// formats CUE errors with JSON-style paths.
//
//	//go:embed config_schema.cue
//	var schemaSrc string
//
//	schema, err := cueutil.CompileSchema(schemaSrc, "#Config")
//	...
//	if err := schema.Validate(data, "config.toml"); err != nil {
//		return err // "config.toml: options.temperature: invalid value 3 (out of bound <=2)"
//	}
package cueutil
