// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aipack/aipack/internal/config"
	"github.com/aipack/aipack/internal/dirs"
	"github.com/aipack/aipack/internal/pathctx"
	"github.com/aipack/aipack/pkg/types"
)

func newInitCommand(app *App) *cobra.Command {
	var baseOnly bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a workspace in the current directory",
		Long: `Create the .aipack workspace directory in the current directory and the
~/.aipack-base directory, each with a default config.toml.

Existing files are left untouched, so init can be run again safely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(runInit(app, baseOnly))
		},
	}
	cmd.Flags().BoolVar(&baseOnly, "base-only", false, "only create ~/.aipack-base")
	return cmd
}

func runInit(app *App, baseOnly bool) error {
	pc, err := app.Paths(pathctx.Options{NoWorkspace: true})
	if err != nil {
		return err
	}

	base := pc.Paths().BaseRoot()
	if err := ensureTree(app, base.ConfigFile(), base.CustomPackDir(), base.InstalledPackDir(), base.DownloadPackDir()); err != nil {
		return err
	}
	if baseOnly {
		return nil
	}

	marker := dirs.NewWorkspaceMarker(pc.CurrentDir())
	if err := ensureTree(app, marker.ConfigFile(), marker.CustomPackDir()); err != nil {
		return err
	}

	paths, err := dirs.FromWorkspaceRootWithHome(pc.HomeDir(), pc.CurrentDir())
	if err != nil {
		return err
	}
	root, _ := paths.WorkspaceRoot()
	fmt.Fprintf(app.stdout, "%s Workspace ready at %s\n", SuccessStyle.Render("✓"), root)
	return nil
}

// ensureTree creates the directories and writes a default config file when
// none exists, reporting each item it creates.
func ensureTree(app *App, configFile types.FilesystemPath, dirPaths ...types.FilesystemPath) error {
	for _, d := range dirPaths {
		if err := os.MkdirAll(d.String(), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", d, err)
		}
	}
	created, err := config.CreateDefault(configFile)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(app.stdout, "%s Created %s\n", SuccessStyle.Render("✓"), configFile)
	}
	return nil
}
