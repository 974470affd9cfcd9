// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aipack/aipack/pkg/fspath"
)

func newWorkspaceCommand(app *App) *cobra.Command {
	var require bool
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Show the workspace and base directories in effect",
		Long: `Show the workspace discovered from the current directory, the base
directory and the configuration files that are read.

With --require the command fails when no workspace is found, which makes
it usable as a check in scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(showWorkspace(cmd.Context(), app, require))
		},
	}
	cmd.Flags().BoolVar(&require, "require", false, "fail when no workspace is found")
	return cmd
}

func showWorkspace(ctx context.Context, app *App, require bool) error {
	pc, err := app.pathContext()
	if err != nil {
		return err
	}
	paths := pc.Paths()
	if require {
		if _, err := paths.RequireWorkspaceRoot("workspace"); err != nil {
			return err
		}
	}
	app.loadConfig(ctx, pc)

	none := SubtitleStyle.Render("(none)")
	if root, ok := paths.WorkspaceRoot(); ok {
		app.printKV("workspace", root)
	} else {
		app.printKV("workspace", none)
	}
	if marker, ok := paths.WorkspaceMarker(); ok {
		app.printKV("marker", marker.Path())
	} else {
		app.printKV("marker", none)
	}

	base := paths.BaseRoot()
	if base.Exists() {
		app.printKV("base", base.Path())
	} else {
		app.printKV("base", base.Path().String()+" "+SubtitleStyle.Render("(missing)"))
	}

	for _, f := range paths.ConfigFiles() {
		if fspath.IsFile(f) {
			app.printKV("config", f)
		} else {
			app.printKV("config", f.String()+" "+SubtitleStyle.Render("(missing)"))
		}
	}
	return nil
}
