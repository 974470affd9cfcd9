// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aipack/aipack/internal/issue"
	"github.com/aipack/aipack/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "aip",
		Level:  log.WarnLevel,
	})
)

// NewRootCommand builds the aip command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "aip",
		Short: "Resolve paths and pack references for agent packs",
		Long: TitleStyle.Render("aip") + SubtitleStyle.Render(" - agent pack path resolution") + `

aip resolves the paths agent packs use: plain relative paths, ~/ paths,
$tmp session paths and pack references such as

  pro@coder/prompts/main.md        a file inside an installed or custom pack
  pro@coder$base/notes.md          the pack's support directory in ~/.aipack-base
  pro@coder$workspace/notes.md     the pack's support directory in the workspace

A workspace is the nearest directory, upward from the current directory,
holding a .aipack directory.

` + SubtitleStyle.Render("Examples:") + `
  aip init                         Create .aipack in the current directory
  aip resolve pro@coder/main.md    Print the absolute path of a pack file
  aip pack list                    List the packs that can be referenced
  aip config show                  Show the merged configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(app.stderr)
			setLogLevel(app.verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVar(&app.configPath, "config", "", "read configuration from this file only")

	root.AddCommand(
		newResolveCommand(app),
		newRefCommand(app),
		newGlobCommand(app),
		newPackCommand(app),
		newWorkspaceCommand(app),
		newInitCommand(app),
		newConfigCommand(app),
	)
	return root
}

// Execute runs the CLI and exits the process with its exit code.
// This is called by main.main().
func Execute() {
	os.Exit(Run())
}

// Run executes the CLI with os.Args and returns the process exit code.
func Run() int {
	slog.SetDefault(slog.New(logger))

	app := NewApp(Dependencies{})
	err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	)
	if err == nil {
		return int(types.ExitOK)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Code)
	}
	return int(types.ExitFailure)
}

// errorHandler prints errors fang receives. Failures already rendered by
// handleError arrive as an ExitError without a cause and print nothing.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// setLogLevel switches the slog handler between warnings only and debug.
func setLogLevel(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// formatErrorForDisplay uses ActionableError.Format when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
