// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/aipack/aipack/pkg/types"
)

// ErrInvalidLoadOptions is the sentinel error wrapped by InvalidLoadOptionsError.
var ErrInvalidLoadOptions = errors.New("invalid load options")

type (
	// LoadOptions lists where configuration is read from.
	LoadOptions struct {
		// ConfigFiles are merged in order, later files overriding earlier
		// ones. Missing files are skipped.
		ConfigFiles []types.FilesystemPath
		// ConfigFilePath, when set, replaces ConfigFiles and must exist.
		ConfigFilePath types.FilesystemPath
	}

	// InvalidLoadOptionsError collects invalid LoadOptions fields.
	InvalidLoadOptionsError struct {
		FieldErrors []error
	}

	// Provider loads configuration.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	// Result is a loaded configuration with the files it came from.
	Result struct {
		Config *Config
		Files  []types.FilesystemPath
	}

	fileProvider struct{}
)

// NewProvider returns the file-backed Provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested files.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	return cfg, err
}

// LoadWithSources is Load that also reports which files were read.
func LoadWithSources(ctx context.Context, opts LoadOptions) (Result, error) {
	cfg, files, err := loadWithOptions(ctx, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Config: cfg, Files: files}, nil
}

// Validate rejects blank paths.
func (o LoadOptions) Validate() error {
	var errs []error
	for _, f := range o.ConfigFiles {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if !o.ConfigFilePath.IsZero() {
		if err := o.ConfigFilePath.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &InvalidLoadOptionsError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidLoadOptionsError) Error() string {
	return fmt.Sprintf("invalid load options: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidLoadOptions for errors.Is() compatibility.
func (e *InvalidLoadOptionsError) Unwrap() error { return ErrInvalidLoadOptions }
