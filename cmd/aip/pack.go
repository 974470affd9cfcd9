// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aipack/aipack/internal/packdir"
	"github.com/aipack/aipack/pkg/packref"
)

// newPackCommand creates the `aip pack` command tree.
func newPackCommand(app *App) *cobra.Command {
	packCmd := &cobra.Command{
		Use:   "pack",
		Short: "Inspect the packs that references can point to",
		Long: `Inspect the packs that references can point to.

Packs are searched in these repository roots, first match wins:
  1. <workspace>/.aipack/pack/custom
  2. ~/.aipack-base/pack/custom
  3. ~/.aipack-base/pack/installed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	packCmd.AddCommand(&cobra.Command{
		Use:   "list [namespace]",
		Short: "List packs in precedence order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var namespace string
			if len(args) == 1 {
				namespace = args[0]
			}
			return app.handleError(listPacks(cmd.Context(), app, namespace))
		},
	})

	packCmd.AddCommand(&cobra.Command{
		Use:   "roots",
		Short: "Show the repository roots that exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(showRoots(cmd.Context(), app))
		},
	})

	return packCmd
}

func listPacks(ctx context.Context, app *App, namespace string) error {
	if namespace != "" {
		if err := packref.ValidateNamespace(namespace); err != nil {
			return err
		}
	}
	pc, err := app.pathContext()
	if err != nil {
		return err
	}
	app.loadConfig(ctx, pc)

	packs, diags := packdir.List(pc.Paths().RepoRoots(), namespace)
	packdir.Log(diags)
	if len(packs) == 0 {
		app.println(SubtitleStyle.Render("(no packs found)"))
		return nil
	}

	for _, p := range packs {
		line := KeyStyle.Render(p.Identity.String()) + "  " + SubtitleStyle.Render(p.Kind.String()) + "  " + pc.PathToTilde(p.Path)
		if p.Manifest != nil && p.Manifest.Version != "" {
			line += "  " + SuccessStyle.Render("v"+p.Manifest.Version)
		}
		app.println(line)
	}
	return nil
}

func showRoots(ctx context.Context, app *App) error {
	pc, err := app.pathContext()
	if err != nil {
		return err
	}
	app.loadConfig(ctx, pc)

	roots := pc.Paths().RepoRoots()
	if len(roots) == 0 {
		app.println(SubtitleStyle.Render("(no repository roots exist, run 'aip init')"))
		return nil
	}
	for i, r := range roots {
		app.printf("%d. %s  %s\n", i+1, KeyStyle.Render(r.Kind.String()), r.Path)
	}
	return nil
}
