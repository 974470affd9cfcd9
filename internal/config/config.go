// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/aipack/aipack/internal/issue"
	"github.com/aipack/aipack/pkg/cueutil"
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/types"
)

// EnvPrefix prefixes environment overrides, e.g. AIPACK_UI_VERBOSE.
const EnvPrefix = "AIPACK"

// ErrConfigNotFound is returned when an explicitly requested file is missing.
var ErrConfigNotFound = errors.New("config file not found")

//go:embed config_schema.cue
var configSchema string

// compileSchema compiles the embedded schema once. Validation runs under
// schemaMu because a CUE context is not safe for concurrent use.
var (
	compileSchema = sync.OnceValues(func() (*cueutil.Schema, error) {
		return cueutil.CompileSchema(configSchema, "#Config")
	})
	schemaMu sync.Mutex
)

// loadWithOptions merges the requested files over the defaults and returns
// the result with the files actually read.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, []types.FilesystemPath, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	v := newViper()

	files := opts.ConfigFiles
	if !opts.ConfigFilePath.IsZero() {
		if !fspath.IsFile(opts.ConfigFilePath) {
			return nil, nil, loadError(opts.ConfigFilePath, fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath),
				"Verify the path passed to --config",
				"Run 'aip config path' to see the default locations")
		}
		files = []types.FilesystemPath{opts.ConfigFilePath}
	}

	var loaded []types.FilesystemPath
	for _, path := range files {
		if !fspath.IsFile(path) {
			slog.Debug("config file absent, skipping", "path", path)
			continue
		}
		if err := mergeFile(v, path); err != nil {
			return nil, nil, loadError(path, err,
				"Check the file's TOML syntax",
				"Compare the keys with 'aip config show'")
		}
		loaded = append(loaded, path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Check AIPACK_* environment overrides").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(err).
			BuildError()
	}
	return &cfg, loaded, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("options.model", defaults.Options.Model)
	v.SetDefault("options.temperature", defaults.Options.Temperature)
	v.SetDefault("options.input_concurrency", defaults.Options.InputConcurrency)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme.String())
	return v
}

// mergeFile decodes one TOML file, validates it against #Config and merges
// it into v.
func mergeFile(v *viper.Viper, path types.FilesystemPath) error {
	data, err := os.ReadFile(path.String())
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path.String()); err != nil {
		return err
	}

	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	if m == nil {
		m = map[string]any{}
	}

	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	schemaMu.Lock()
	err = schema.Validate(m, path.String())
	schemaMu.Unlock()
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(m); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func loadError(path types.FilesystemPath, err error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path.String()).
		WithSuggestions(suggestions...).
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// Marshal renders cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path types.FilesystemPath) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(fspath.Dir(path).String(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path.String(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// CreateDefault writes the default configuration to path unless a file is
// already there. It reports whether a file was written.
func CreateDefault(path types.FilesystemPath) (bool, error) {
	if fspath.Exists(path) {
		return false, nil
	}
	if err := Save(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}
