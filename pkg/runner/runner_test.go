// pkg/runner/runner_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem; spawns /bin/echo and bash on Unix
// PURPOSE: Test interpreter selection, env injection and exit code forwarding

package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("interpreter names differ on windows")
	}

	tests := []struct {
		name   string
		script string
		extra  []string
		want   []string
	}{
		{"shell_script", "/p/hooks/validate.sh", nil, []string{"bash", "/p/hooks/validate.sh"}},
		{"no_extension", "/p/bin/tool", nil, []string{"bash", "/p/bin/tool"}},
		{"python_script", "/p/scripts/check.py", nil, []string{"python3", "/p/scripts/check.py"}},
		{"powershell_script", "/p/scripts/run.ps1", nil,
			[]string{"powershell", "-ExecutionPolicy", "Bypass", "-File", "/p/scripts/run.ps1"}},
		{"unknown_extension_runs_directly", "/p/bin/tool.bin", nil, []string{"/p/bin/tool.bin"}},
		{"extra_args_appended", "/p/check.sh", []string{"--verbose", "x"},
			[]string{"bash", "/p/check.sh", "--verbose", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandFor(tt.script, tt.extra))
		})
	}
}

func TestRunMissingScript(t *testing.T) {
	_, err := Run(Options{PluginRoot: t.TempDir(), Script: "missing.sh"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptNotFound))
}

func TestRunForwardsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs bash")
	}

	pluginRoot := t.TempDir()
	script := filepath.Join(pluginRoot, "fail.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/bash\nexit 7\n"), 0755))

	code, err := Run(Options{PluginRoot: pluginRoot, Script: "fail.sh"})
	require.NoError(t, err)
	assert.Equal(t, 7, code)
}

func TestRunInjectsEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs bash")
	}

	pluginRoot := t.TempDir()
	projectDir := t.TempDir()
	outFile := filepath.Join(t.TempDir(), "out")

	script := filepath.Join(pluginRoot, "env.sh")
	require.NoError(t, os.WriteFile(script,
		[]byte("#!/bin/bash\necho \"$CLAUDE_PLUGIN_ROOT:$CLAUDE_PROJECT_DIR:$PWD\" > "+outFile+"\n"), 0755))

	code, err := Run(Options{PluginRoot: pluginRoot, Script: "env.sh", ProjectDir: projectDir})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), pluginRoot+":"+projectDir)
}

func TestRunPipesStdinData(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs bash")
	}

	pluginRoot := t.TempDir()
	outFile := filepath.Join(t.TempDir(), "out")
	script := filepath.Join(pluginRoot, "cat.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/bash\ncat > "+outFile+"\n"), 0755))

	_, err := Run(Options{PluginRoot: pluginRoot, Script: "cat.sh", StdinData: `{"event":"x"}`})
	require.NoError(t, err)

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, `{"event":"x"}`, string(out))
}
