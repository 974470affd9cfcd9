// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aipack/aipack/internal/pathglob"
	"github.com/aipack/aipack/pkg/types"
)

func newGlobCommand(app *App) *cobra.Command {
	var (
		rf resolveFlags
		of outputFlags
	)
	cmd := &cobra.Command{
		Use:   "glob <pattern>...",
		Short: "Expand glob patterns to the files they match",
		Long: `Expand each pattern to the files it matches.

The part of a pattern before the first wildcard is resolved like
'aip resolve' resolves a path, so pack references, ~/ and $tmp work.
Patterns support ** for any number of directories and {a,b} alternatives.`,
		Example: `  aip glob 'src/**/*.go'
  aip glob 'pro@coder/prompts/*.md'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(runGlob(cmd.Context(), app, rf, of, args))
		},
	}
	rf.register(cmd)
	cmd.Flags().BoolVar(&of.tilde, "tilde", false, "print paths under the home directory with a ~ prefix")
	cmd.Flags().BoolVar(&of.quote, "quote", false, "quote paths for safe use in a POSIX shell")
	return cmd
}

func runGlob(ctx context.Context, app *App, rf resolveFlags, of outputFlags, patterns []string) error {
	mode, sess, err := rf.parse()
	if err != nil {
		return err
	}
	pc, err := app.pathContext()
	if err != nil {
		return err
	}
	app.loadConfig(ctx, pc)
	app.announceSession(rf, sess)

	matches, err := pathglob.Expand(pc, sess, patterns, mode, types.FilesystemPath(rf.base))
	if err != nil {
		return err
	}
	for _, m := range matches {
		out, err := of.format(pc, m)
		if err != nil {
			return err
		}
		app.println(out)
	}
	return nil
}
