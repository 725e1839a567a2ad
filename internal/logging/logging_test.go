package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAt(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitAt(dir))
	require.NotNil(t, Logger)

	slog.Info("module created", "module_id", "m1")

	data, err := os.ReadFile(filepath.Join(dir, "coursekit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "module created")
	assert.Contains(t, string(data), "module_id=m1")
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		raw    string
		expect slog.Level
	}{
		{"", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"loud", slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.raw)
			assert.Equal(t, tt.expect, levelFromEnv())
		})
	}
}
