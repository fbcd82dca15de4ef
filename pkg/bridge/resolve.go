package bridge

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/types"
)

// Resolve maps a user-supplied plugin name, possibly partial, to exactly one
// entry in the bridge plugins directory. An exact name wins immediately;
// otherwise a unique substring match resolves, zero matches fail as not
// found and multiple matches fail as ambiguous with every candidate listed
// in the error details.
func Resolve(fsys types.FS, pluginsDir, query string) (string, error) {
	exact := filepath.Join(pluginsDir, query)
	if _, err := fsys.Lstat(exact); err == nil {
		return exact, nil
	}

	entries, err := fsys.ReadDir(pluginsDir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "cannot read bridge plugins directory").
			WithDetail("path", pluginsDir)
	}

	var matches []string
	for _, entry := range entries {
		if strings.Contains(entry.Name(), query) {
			matches = append(matches, entry.Name())
		}
	}

	switch len(matches) {
	case 1:
		return filepath.Join(pluginsDir, matches[0]), nil
	case 0:
		return "", errors.Newf(errors.ErrPluginNotFound, "plugin %q not found", query)
	default:
		return "", errors.Newf(errors.ErrPluginAmbiguous, "ambiguous plugin name %q", query).
			WithDetail("candidates", matches)
	}
}
