// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aipack/aipack/internal/config"
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/types"
)

// newConfigCommand creates the `aip config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect aip configuration",
		Long: `Inspect aip configuration.

Configuration is merged from these files, later ones overriding earlier ones:
  1. ~/.aipack-base/config.toml
  2. <workspace>/.aipack/config.toml

Environment variables prefixed with AIPACK_ override both, for example
AIPACK_UI_VERBOSE=true or AIPACK_OPTIONS_MODEL=gpt-4o.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the merged configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(showConfig(cmd.Context(), app))
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration files and whether they exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(showConfigPath(app))
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	pc, err := app.pathContext()
	if err != nil {
		return err
	}
	cfg, err := app.Config.Load(ctx, app.loadOptions(pc))
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = app.stdout.Write(data)
	return err
}

func showConfigPath(app *App) error {
	pc, err := app.pathContext()
	if err != nil {
		return err
	}
	opts := app.loadOptions(pc)
	files := opts.ConfigFiles
	if !opts.ConfigFilePath.IsZero() {
		files = []types.FilesystemPath{opts.ConfigFilePath}
	}
	for _, f := range files {
		if fspath.IsFile(f) {
			app.println(f)
		} else {
			app.println(f.String() + " " + SubtitleStyle.Render("(missing)"))
		}
	}
	return nil
}
