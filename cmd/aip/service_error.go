// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aipack/aipack/internal/config"
	"github.com/aipack/aipack/internal/dirs"
	"github.com/aipack/aipack/internal/issue"
	"github.com/aipack/aipack/internal/packdir"
	"github.com/aipack/aipack/internal/pathctx"
	"github.com/aipack/aipack/internal/pathglob"
	"github.com/aipack/aipack/internal/session"
	"github.com/aipack/aipack/pkg/packref"
	"github.com/aipack/aipack/pkg/types"
)

// classifyError maps a failure to its issue catalog entry (0 when none
// applies) and the process exit code.
func classifyError(err error) (issue.Id, types.ExitCode) {
	var ae *issue.ActionableError
	switch {
	case errors.Is(err, dirs.ErrWorkspaceRequired):
		return issue.WorkspaceRequiredId, types.ExitWorkspaceRequired
	case errors.Is(err, packref.ErrMalformedReference):
		return issue.MalformedReferenceId, types.ExitMalformedRef
	case errors.Is(err, packdir.ErrAmbiguousPack):
		return issue.AmbiguousPackId, types.ExitMalformedRef
	case errors.Is(err, pathctx.ErrReferenceNotFound), errors.Is(err, packdir.ErrPackNotFound):
		return issue.PackNotFoundId, types.ExitNotFound
	case errors.Is(err, pathctx.ErrSessionRequired):
		return issue.SessionRequiredId, types.ExitUsage
	case errors.Is(err, pathctx.ErrInvalidMode),
		errors.Is(err, session.ErrInvalidSession),
		errors.Is(err, pathglob.ErrInvalidPattern):
		return 0, types.ExitUsage
	case errors.Is(err, dirs.ErrHomeDirUnavailable):
		return issue.HomeDirUnavailableId, types.ExitFailure
	case errors.Is(err, dirs.ErrPathUnresolvable):
		return issue.PathUnresolvableId, types.ExitFailure
	case errors.Is(err, config.ErrConfigNotFound),
		errors.As(err, &ae) && ae.Issue == issue.ConfigLoadFailedId:
		return issue.ConfigLoadFailedId, types.ExitConfig
	default:
		return 0, types.ExitFailure
	}
}

// handleError renders err with its catalog entry to stderr and returns an
// ExitError carrying the classified exit code.
func (a *App) handleError(err error) error {
	if err == nil {
		return nil
	}
	id, code := classifyError(err)

	fmt.Fprintf(a.stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, a.verbose))
	if id != 0 {
		if entry := issue.Get(id); entry != nil {
			rendered, renderErr := entry.Render(a.colorScheme.String())
			if renderErr != nil {
				slog.Warn("failed to render issue catalog entry", "issueID", id, "error", renderErr)
			} else {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}
	return &ExitError{Code: code}
}
