// SPDX-License-Identifier: MPL-2.0

// Package config loads the TOML configuration files listed by
// dirs.PathSet.ConfigFiles.
//
// Files are merged in order with Viper, so the workspace config overrides
// the base config key by key. Each file is validated against an embedded CUE
// schema (config_schema.cue) before merging. A missing base config file is
// not an error; defaults apply.
//
// Environment variables prefixed with AIPACK_ override file values, for
// example AIPACK_OPTIONS_MODEL for options.model.
package config
