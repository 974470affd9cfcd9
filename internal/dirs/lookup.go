// SPDX-License-Identifier: MPL-2.0

package dirs

import (
	"os"

	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/types"
)

// HomeDir returns the user's home directory. It fails with a HomeDirError
// when the directory cannot be determined or does not exist.
func HomeDir() (types.FilesystemPath, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &HomeDirError{Cause: err}
	}
	return checkHomeDir(types.FilesystemPath(home))
}

// CurrentDir returns the process working directory.
func CurrentDir() (types.FilesystemPath, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", &UnresolvablePathError{Path: ".", Cause: err}
	}
	return types.FilesystemPath(wd), nil
}

func checkHomeDir(home types.FilesystemPath) (types.FilesystemPath, error) {
	if err := home.Validate(); err != nil {
		return "", &HomeDirError{Cause: err}
	}
	abs, err := fspath.Abs(home)
	if err != nil {
		return "", &HomeDirError{Path: home, Cause: err}
	}
	if !fspath.IsDir(abs) {
		return "", &HomeDirError{Path: abs}
	}
	return abs, nil
}
