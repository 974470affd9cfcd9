// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal background.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces the dark palette.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces the light palette.
	ColorSchemeLight ColorScheme = "light"

	// MaxInputConcurrency bounds options.input_concurrency.
	MaxInputConcurrency = 64
	// MaxTemperature bounds options.temperature.
	MaxTemperature = 2.0
)

var (
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme is the ui.color_scheme setting.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects every invalid field of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the merged configuration.
	Config struct {
		Options Options  `mapstructure:"options" toml:"options"`
		UI      UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// Options are the run defaults handed to the agent runtime.
	Options struct {
		// Model is the default model name or alias.
		Model       string  `mapstructure:"model" toml:"model,omitempty"`
		Temperature float64 `mapstructure:"temperature" toml:"temperature"`
		// InputConcurrency is how many inputs an agent processes at once.
		InputConcurrency int `mapstructure:"input_concurrency" toml:"input_concurrency"`
		// ModelAliases maps short names to model names.
		ModelAliases map[string]string `mapstructure:"model_aliases" toml:"model_aliases,omitempty"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		Verbose     bool        `mapstructure:"verbose" toml:"verbose"`
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
	}
)

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() *Config {
	return &Config{
		Options: Options{
			Temperature:      0,
			InputConcurrency: 1,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// ResolveModel expands name through the alias table. Unknown names are
// returned unchanged; an empty name selects the default model.
func (o Options) ResolveModel(name string) string {
	if name == "" {
		name = o.Model
	}
	if target, ok := o.ModelAliases[name]; ok {
		return target
	}
	return name
}

// Validate checks the values the CUE schema cannot see after merging and
// environment overrides.
func (c Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if n := c.Options.InputConcurrency; n < 1 || n > MaxInputConcurrency {
		errs = append(errs, fmt.Errorf("options.input_concurrency %d out of range [1, %d]", n, MaxInputConcurrency))
	}
	if t := c.Options.Temperature; t < 0 || t > MaxTemperature {
		errs = append(errs, fmt.Errorf("options.temperature %g out of range [0, %g]", t, MaxTemperature))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Validate returns nil for the known color schemes.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
