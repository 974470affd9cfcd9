// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"github.com/aipack/aipack/internal/pathctx"
	"github.com/aipack/aipack/internal/session"
	"github.com/aipack/aipack/pkg/types"
)

type (
	// resolveFlags are the flags shared by resolve and glob.
	resolveFlags struct {
		mode       string
		base       string
		session    string
		newSession bool
	}

	// outputFlags control how resolved paths are printed.
	outputFlags struct {
		tilde bool
		quote bool
	}
)

func newResolveCommand(app *App) *cobra.Command {
	var (
		rf resolveFlags
		of outputFlags
	)
	cmd := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve paths and pack references to absolute paths",
		Long: `Resolve each argument to an absolute, lexically cleaned path.

Arguments may be absolute paths, ~/ paths, $tmp session paths, pack
references (namespace@name/sub/path) or plain relative paths. Relative
paths are joined to the directory chosen by --mode, or to --base.`,
		Example: `  aip resolve notes/today.md
  aip resolve --mode workspace src/main.rs
  aip resolve 'pro@coder$workspace/state.json'
  aip resolve --new-session '$tmp/out.txt'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.handleError(runResolve(cmd.Context(), app, rf, of, args))
		},
	}
	rf.register(cmd)
	cmd.Flags().BoolVar(&of.tilde, "tilde", false, "print paths under the home directory with a ~ prefix")
	cmd.Flags().BoolVar(&of.quote, "quote", false, "quote paths for safe use in a POSIX shell")
	return cmd
}

func (f *resolveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", pathctx.ModeCurrentDir.String(), "base for relative paths: current-dir (cwd), workspace (wks) or workspace-marker (marker)")
	cmd.Flags().StringVar(&f.base, "base", "", "join relative paths to this directory instead")
	cmd.Flags().StringVar(&f.session, "session", "", "session id used for $tmp paths")
	cmd.Flags().BoolVar(&f.newSession, "new-session", false, "create a new session id for $tmp paths")
	cmd.MarkFlagsMutuallyExclusive("session", "new-session")
}

// parse validates the flag values.
func (f resolveFlags) parse() (pathctx.Mode, session.Session, error) {
	mode, err := pathctx.ParseMode(f.mode)
	if err != nil {
		return "", session.Session{}, err
	}
	var sess session.Session
	switch {
	case f.newSession:
		if sess, err = session.New(); err != nil {
			return "", session.Session{}, err
		}
	case f.session != "":
		if sess, err = session.Parse(f.session); err != nil {
			return "", session.Session{}, err
		}
	}
	return mode, sess, nil
}

func (a *App) announceSession(f resolveFlags, sess session.Session) {
	if f.newSession {
		fmt.Fprintln(a.stderr, SubtitleStyle.Render("session: ")+sess.String())
	}
}

func runResolve(ctx context.Context, app *App, rf resolveFlags, of outputFlags, args []string) error {
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

	for _, raw := range args {
		p, err := pc.Resolve(sess, raw, mode, types.FilesystemPath(rf.base))
		if err != nil {
			return err
		}
		out, err := of.format(pc, p)
		if err != nil {
			return err
		}
		app.println(out)
	}
	return nil
}

// format renders p for output.
func (f outputFlags) format(pc *pathctx.PathContext, p types.FilesystemPath) (string, error) {
	s := p.String()
	if f.tilde {
		s = pc.PathToTilde(p)
	}
	if !f.quote {
		return s, nil
	}
	quoted, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("cannot quote %q: %w", s, err)
	}
	return quoted, nil
}
