package bridge

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/types"
)

// resourceProbes are the conventional plugin entries surfaced by listing,
// probed in display order
var resourceProbes = []struct {
	entry string
	tag   string
}{
	{"skills", "skills"},
	{"hooks", "hooks"},
	{"agents", "agents"},
	{"commands", "commands"},
	{"README.md", "readme"},
}

// List enumerates the bridged plugin links with the resources each exposes.
// Resolution happens through the links, so dangling links and non-directory
// entries are skipped.
func List(fsys types.FS, pluginsDir string) ([]types.PluginInfo, error) {
	entries, err := fsys.ReadDir(pluginsDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read bridge plugins directory").
			WithDetail("path", pluginsDir)
	}

	var plugins []types.PluginInfo
	for _, entry := range entries {
		path := filepath.Join(pluginsDir, entry.Name())

		// Plugin links resolve to directories; anything else is foreign
		if info, err := fsys.Stat(path); err != nil || !info.IsDir() {
			continue
		}

		var resources []string
		for _, probe := range resourceProbes {
			if _, err := fsys.Stat(filepath.Join(path, probe.entry)); err == nil {
				resources = append(resources, probe.tag)
			}
		}

		plugins = append(plugins, types.PluginInfo{
			Name:      entry.Name(),
			Path:      path,
			Resources: resources,
		})
	}

	sort.Slice(plugins, func(i, j int) bool { return plugins[i].Name < plugins[j].Name })
	return plugins, nil
}
