// SPDX-License-Identifier: MPL-2.0

package dirs

import (
	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/types"
)

// Directory and file names of the on-disk layout.
const (
	BaseDirName      = ".aipack-base"
	MarkerDirName    = ".aipack"
	ConfigFileName   = "config.toml"
	PackDirName      = "pack"
	CustomDirName    = "custom"
	InstalledDirName = "installed"
	DownloadDirName  = "download"
	SupportDirName   = "support"
	SessionDirName   = ".session"
	TmpDirName       = "tmp"
)

type (
	// BaseRoot is the user-wide ~/.aipack-base directory. It may not exist yet.
	BaseRoot struct {
		path types.FilesystemPath
	}

	// WorkspaceMarker is the per-project <workspace>/.aipack directory. It may
	// not exist yet (before init).
	WorkspaceMarker struct {
		path types.FilesystemPath
	}
)

// NewBaseRoot returns the base root under home. It fails only when home is
// missing; the base root itself is not required to exist.
func NewBaseRoot(home types.FilesystemPath) (BaseRoot, error) {
	abs, err := checkHomeDir(home)
	if err != nil {
		return BaseRoot{}, err
	}
	return BaseRoot{path: fspath.JoinStr(abs, BaseDirName)}, nil
}

// DefaultBaseRoot returns the base root under the current user's home.
func DefaultBaseRoot() (BaseRoot, error) {
	home, err := HomeDir()
	if err != nil {
		return BaseRoot{}, err
	}
	return NewBaseRoot(home)
}

// Path returns the absolute path of the base root.
func (b BaseRoot) Path() types.FilesystemPath { return b.path }

// Exists reports whether the base root directory is present.
func (b BaseRoot) Exists() bool { return fspath.IsDir(b.path) }

// Join joins leaf segments onto the base root.
func (b BaseRoot) Join(leaf ...string) types.FilesystemPath {
	return fspath.JoinStr(b.path, leaf...)
}

// ConfigFile returns ~/.aipack-base/config.toml.
func (b BaseRoot) ConfigFile() types.FilesystemPath { return b.Join(ConfigFileName) }

// CustomPackDir returns ~/.aipack-base/pack/custom.
func (b BaseRoot) CustomPackDir() types.FilesystemPath {
	return b.Join(PackDirName, CustomDirName)
}

// InstalledPackDir returns ~/.aipack-base/pack/installed.
func (b BaseRoot) InstalledPackDir() types.FilesystemPath {
	return b.Join(PackDirName, InstalledDirName)
}

// DownloadPackDir returns ~/.aipack-base/pack/download.
func (b BaseRoot) DownloadPackDir() types.FilesystemPath {
	return b.Join(PackDirName, DownloadDirName)
}

// SupportPackDir returns ~/.aipack-base/support/pack/<namespace>/<name>.
func (b BaseRoot) SupportPackDir(namespace, name string) types.FilesystemPath {
	return b.Join(SupportDirName, PackDirName, namespace, name)
}

// NewWorkspaceMarker returns the marker for an already canonicalized
// workspace root. The marker directory is not required to exist.
func NewWorkspaceMarker(workspaceRoot types.FilesystemPath) WorkspaceMarker {
	return WorkspaceMarker{path: fspath.JoinStr(workspaceRoot, MarkerDirName)}
}

// Path returns the absolute path of the .aipack directory.
func (m WorkspaceMarker) Path() types.FilesystemPath { return m.path }

// Exists reports whether the .aipack directory is present.
func (m WorkspaceMarker) Exists() bool { return fspath.IsDir(m.path) }

// Join joins leaf segments onto the marker directory.
func (m WorkspaceMarker) Join(leaf ...string) types.FilesystemPath {
	return fspath.JoinStr(m.path, leaf...)
}

// ConfigFile returns <workspace>/.aipack/config.toml.
func (m WorkspaceMarker) ConfigFile() types.FilesystemPath { return m.Join(ConfigFileName) }

// CustomPackDir returns <workspace>/.aipack/pack/custom.
func (m WorkspaceMarker) CustomPackDir() types.FilesystemPath {
	return m.Join(PackDirName, CustomDirName)
}

// SupportPackDir returns <workspace>/.aipack/support/pack/<namespace>/<name>.
func (m WorkspaceMarker) SupportPackDir(namespace, name string) types.FilesystemPath {
	return m.Join(SupportDirName, PackDirName, namespace, name)
}

// SessionTmpDir returns <workspace>/.aipack/.session/<session>/tmp.
func (m WorkspaceMarker) SessionTmpDir(session string) types.FilesystemPath {
	return m.Join(SessionDirName, session, TmpDirName)
}
