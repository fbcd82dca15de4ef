package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			// Check that log file was created
			logPath := filepath.Join(tempDir, "claude-bridge", "claude-bridge.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")

		got := getLogFilePath()
		want := filepath.Join("/custom/state", "claude-bridge", "claude-bridge.log")
		if got != want {
			t.Errorf("getLogFilePath() = %q, want %q", got, want)
		}
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")

		got := getLogFilePath()
		if !strings.HasSuffix(got, filepath.Join("claude-bridge", "claude-bridge.log")) {
			t.Errorf("getLogFilePath() = %q, want path ending in claude-bridge/claude-bridge.log", got)
		}
	})
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("test.component")

	// The logger should be usable without panicking
	logger.Debug().Msg("test message")
	logger.Info().Str("key", "value").Msg("test with fields")
}
