// pkg/hooks/hooks_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test hooks descriptor parsing in both accepted shapes

package hooks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/arthur-debert/claude-bridge/pkg/filesystem"
	"github.com/arthur-debert/claude-bridge/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "hooks"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hooks", "hooks.json"), []byte(content), 0644))
	return root
}

func TestLoadWrappedShape(t *testing.T) {
	root := writeDescriptor(t, `{
		"hooks": {
			"PreToolUse": [
				{"matcher": "Bash", "hooks": [{"type": "command", "command": "./validate.sh"}]}
			],
			"PostToolUse": [
				{"matcher": "*", "hooks": [{"type": "command"}, {"type": "prompt"}]}
			]
		}
	}`)

	file, err := hooks.Load(filesystem.NewOS(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"PostToolUse", "PreToolUse"}, file.EventNames())

	pre := file.Events["PreToolUse"]
	require.Len(t, pre, 1)
	assert.Equal(t, "Bash", pre[0].Matcher)
	require.Len(t, pre[0].Hooks, 1)
	assert.Equal(t, "command", pre[0].Hooks[0].Type)
	assert.Equal(t, "./validate.sh", pre[0].Hooks[0].Command)

	assert.Len(t, file.Events["PostToolUse"][0].Hooks, 2)
}

func TestLoadTopLevelShape(t *testing.T) {
	root := writeDescriptor(t, `{
		"description": "plugin hooks",
		"SessionStart": [{"matcher": "*", "hooks": [{"type": "command"}]}]
	}`)

	file, err := hooks.Load(filesystem.NewOS(), root)
	require.NoError(t, err)

	// The description key is not an event
	assert.Equal(t, []string{"SessionStart"}, file.EventNames())
}

func TestLoadMalformed(t *testing.T) {
	root := writeDescriptor(t, `{not json`)

	_, err := hooks.Load(filesystem.NewOS(), root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHooksParse))
}

func TestLoadMissing(t *testing.T) {
	_, err := hooks.Load(filesystem.NewOS(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestLoadSkipsNonListEvents(t *testing.T) {
	root := writeDescriptor(t, `{"Weird": "not a list", "Good": []}`)

	file, err := hooks.Load(filesystem.NewOS(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Good"}, file.EventNames())
}
