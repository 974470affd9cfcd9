// SPDX-License-Identifier: MPL-2.0

package packdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/aipack/aipack/pkg/fspath"
	"github.com/aipack/aipack/pkg/packref"
	"github.com/aipack/aipack/pkg/types"
)

// ManifestFileName is the optional metadata file at the top of a pack.
const ManifestFileName = "pack.toml"

// Manifest is the decoded pack.toml. Namespace and Name are optional; when
// set they must match the directory the pack lives in.
type Manifest struct {
	Namespace   string `toml:"namespace,omitempty"`
	Name        string `toml:"name,omitempty"`
	Version     string `toml:"version,omitempty"`
	Description string `toml:"description,omitempty"`
}

// ReadManifest decodes <dir>/pack.toml. It returns (nil, nil) when the file
// does not exist.
func ReadManifest(dir types.FilesystemPath) (*Manifest, error) {
	path := fspath.JoinStr(dir, ManifestFileName)
	data, err := os.ReadFile(path.String())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("parsing %s at line %d, column %d: %w", path, row, col, err)
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// Matches reports whether the manifest's declared identity, where present,
// agrees with id.
func (m *Manifest) Matches(id packref.PackIdentity) bool {
	if m.Namespace != "" && m.Namespace != id.Namespace {
		return false
	}
	return m.Name == "" || m.Name == id.Name
}
