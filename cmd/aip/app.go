// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aipack/aipack/internal/config"
	"github.com/aipack/aipack/internal/pathctx"
	"github.com/aipack/aipack/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer; every Cobra handler receives an App reference.
	App struct {
		Paths  PathContextFactory
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		verbose     bool
		configPath  string
		colorScheme config.ColorScheme
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Paths  PathContextFactory
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// PathContextFactory builds the PathContext a command resolves against.
	PathContextFactory func(opts pathctx.Options) (*pathctx.PathContext, error)

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Paths == nil {
		deps.Paths = pathctx.NewWithOptions
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{
		Paths:  deps.Paths,
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,

		colorScheme: config.ColorSchemeAuto,
	}
}

// pathContext builds the PathContext for the current directory.
func (a *App) pathContext() (*pathctx.PathContext, error) {
	return a.Paths(pathctx.Options{})
}

// loadOptions returns the config files pc selects, or the --config file.
func (a *App) loadOptions(pc *pathctx.PathContext) config.LoadOptions {
	return config.LoadOptions{
		ConfigFiles:    pc.Paths().ConfigFiles(),
		ConfigFilePath: types.FilesystemPath(a.configPath),
	}
}

// loadConfig loads the configuration for pc. A failure is reported as a
// warning and the defaults are used, so path commands keep working with a
// broken config file.
func (a *App) loadConfig(ctx context.Context, pc *pathctx.PathContext) *config.Config {
	cfg, err := a.Config.Load(ctx, a.loadOptions(pc))
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		return config.DefaultConfig()
	}
	a.colorScheme = cfg.UI.ColorScheme
	if cfg.UI.Verbose && !a.verbose {
		a.verbose = true
		setLogLevel(true)
	}
	return cfg
}

// printf writes formatted output to the App's stdout.
func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}

// println writes a line to the App's stdout.
func (a *App) println(args ...any) {
	fmt.Fprintln(a.stdout, args...)
}

// printKV writes an aligned "key: value" line.
func (a *App) printKV(key string, value any) {
	a.printf("%s %v\n", KeyStyle.Render(fmt.Sprintf("%-16s", key+":")), value)
}
