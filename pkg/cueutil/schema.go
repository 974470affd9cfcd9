// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is a compiled CUE definition. It is safe for sequential reuse; the
// underlying CUE context is not safe for concurrent use.
type Schema struct {
	ctx *cue.Context
	def cue.Value
}

// CompileSchema compiles src and selects the definition at path, such as
// "#Config".
func CompileSchema(src, path string) (*Schema, error) {
	ctx := cuecontext.New()
	root := ctx.CompileString(src)
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	def := root.LookupPath(cue.ParsePath(path))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("schema definition %s: %w", path, err)
	}
	return &Schema{ctx: ctx, def: def}, nil
}

// Validate checks data, typically a map decoded from TOML, against the
// schema. Fields absent from data keep the schema's defaults. filename
// prefixes any error.
func (s *Schema) Validate(data any, filename string) error {
	v := s.ctx.Encode(data)
	if err := v.Err(); err != nil {
		return FormatError(err, filename)
	}
	unified := s.def.Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return FormatError(err, filename)
	}
	return nil
}
