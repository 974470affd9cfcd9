// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/packref"
)

func newRefCommand(app *App) *cobra.Command {
	var parseOnly bool
	cmd := &cobra.Command{
		Use:   "ref <reference>",
		Short: "Parse a pack reference and show where it points",
		Long: `Parse a pack reference and show its parts and the directory it resolves to.

References have the form [namespace@]name[$base|$workspace][/sub/path].`,
		Example: `  aip ref pro@coder
  aip ref 'pro@coder$base/notes.md'
  aip ref --parse-only coder/prompts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(runRef(cmd.Context(), app, args[0], parseOnly))
		},
	}
	cmd.Flags().BoolVar(&parseOnly, "parse-only", false, "only parse, do not look the pack up")
	return cmd
}

func runRef(ctx context.Context, app *App, raw string, parseOnly bool) error {
	ref, err := packref.ParseResolved(raw)
	if err != nil {
		return err
	}

	namespace := ref.Namespace
	if !ref.HasNamespace() {
		namespace = SubtitleStyle.Render("(any)")
	}
	app.printKV("reference", ref.String())
	app.printKV("namespace", namespace)
	app.printKV("name", ref.Name)
	app.printKV("scope", ref.Scope)
	if ref.SubPath != "" {
		app.printKV("sub path", ref.SubPath)
	}
	if parseOnly {
		return nil
	}

	pc, err := app.pathContext()
	if err != nil {
		return err
	}
	app.loadConfig(ctx, pc)

	base, err := pc.ResolveBase(ref)
	if err != nil {
		return err
	}
	app.printKV("base", base)
	if ref.SubPath != "" {
		app.printKV("path", fspath.Clean(fspath.JoinStr(base, ref.SubPath)))
	}
	return nil
}
