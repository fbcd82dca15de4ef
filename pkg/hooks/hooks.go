// Package hooks reads the hooks descriptor a plugin may carry at
// hooks/hooks.json: a mapping from event name to an ordered list of matcher
// objects, each holding an ordered list of hook descriptors. The descriptor
// is consumed read-only, for inspection output.
package hooks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/types"
)

// DescriptorPath is the hooks descriptor location relative to a plugin root
var DescriptorPath = filepath.Join("hooks", "hooks.json")

// Hook is a single hook descriptor
type Hook struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
}

// Matcher pairs a matcher pattern with the hooks it triggers
type Matcher struct {
	Matcher string `json:"matcher"`
	Hooks   []Hook `json:"hooks"`
}

// File is a parsed hooks descriptor
type File struct {
	Events map[string][]Matcher
}

// EventNames returns the event names in sorted order for deterministic
// output
func (f *File) EventNames() []string {
	names := make([]string, 0, len(f.Events))
	for name := range f.Events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and parses a plugin's hooks descriptor. A missing descriptor
// is ErrNotFound; malformed JSON is ErrHooksParse. Event values that are
// not matcher lists (such as a description string) are skipped.
func Load(fsys types.FS, pluginRoot string) (*File, error) {
	path := filepath.Join(pluginRoot, DescriptorPath)

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "plugin has no hooks descriptor").
				WithDetail("path", path)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read hooks descriptor").
			WithDetail("path", path)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrHooksParse, "malformed hooks descriptor").
			WithDetail("path", path)
	}

	// Descriptors come in two shapes: events at the top level, or wrapped
	// under a "hooks" key
	if wrapped, ok := raw["hooks"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(wrapped, &inner); err == nil {
			raw = inner
		}
	}

	file := &File{Events: make(map[string][]Matcher)}
	for event, value := range raw {
		if event == "description" {
			continue
		}
		var matchers []Matcher
		if err := json.Unmarshal(value, &matchers); err != nil {
			continue
		}
		file.Events[event] = matchers
	}

	return file, nil
}
