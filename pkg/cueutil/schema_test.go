// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"errors"
	"strings"
	"testing"

	cueerrors "cuelang.org/go/cue/errors"

	"github.com/aipack/aipack/pkg/cueutil"
)

const testSchema = `
#Config: {
	name?: string & !=""
	level: *1 | int & >=0 & <=3
	tags?: [...string]
}
`

func TestSchemaValidate(t *testing.T) {
	t.Parallel()

	schema, err := cueutil.CompileSchema(testSchema, "#Config")
	if err != nil {
		t.Fatalf("CompileSchema() error = %v", err)
	}

	tests := []struct {
		name    string
		data    map[string]any
		wantErr string
	}{
		{name: "empty uses defaults", data: map[string]any{}},
		{name: "valid", data: map[string]any{"name": "x", "level": 2, "tags": []any{"a"}}},
		{name: "out of range", data: map[string]any{"level": 9}, wantErr: "level"},
		{name: "wrong type", data: map[string]any{"name": 3}, wantErr: "name"},
		{name: "unknown field", data: map[string]any{"nope": true}, wantErr: "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate(tt.data, "config.toml")
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() returned nil")
			}
			if !strings.HasPrefix(err.Error(), "config.toml: ") || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want file prefix and %q", err, tt.wantErr)
			}
			var ve *cueutil.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Validate() error = %T, want *cueutil.ValidationError", err)
			}
			var cueErr cueerrors.Error
			if !errors.As(err, &cueErr) {
				t.Errorf("Validate() error = %v, want it to wrap the CUE error", err)
			}
		})
	}
}

func TestCompileSchema_MissingDefinition(t *testing.T) {
	t.Parallel()

	if _, err := cueutil.CompileSchema(testSchema, "#Other"); err == nil {
		t.Error("CompileSchema() with unknown definition returned nil")
	}
}
