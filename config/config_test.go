package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory so no stray .env file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(filepath.Join(dir, "lending.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "lending.yaml")
	writeFile(t, path, "seed_file: people.yaml\nseed: false\nlog_level: debug\nlog_format: json\nstart_day: 3\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Config{SeedFile: "people.yaml", Seed: false, LogLevel: "debug", LogFormat: "json", StartDay: 3}, cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "lending.yaml")
	writeFile(t, path, "log_level: debug\n")
	t.Setenv("LENDING_LOG_LEVEL", "error")
	t.Setenv("LENDING_SEED", "false")
	t.Setenv("LENDING_START_DAY", "7")
	t.Setenv("LENDING_SEED_FILE", "other.yaml")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.Seed)
	assert.Equal(t, 7, cfg.StartDay)
	assert.Equal(t, "other.yaml", cfg.SeedFile)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "LENDING_LOG_FORMAT=json\n")
	t.Cleanup(func() { os.Unsetenv("LENDING_LOG_FORMAT") })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "malformed yaml", yaml: "seed: [\n"},
		{name: "unknown level", yaml: "log_level: loud\n"},
		{name: "unknown format", yaml: "log_format: xml\n"},
		{name: "negative start day", yaml: "start_day: -1\n"},
		{name: "bad seed flag", env: map[string]string{"LENDING_SEED": "maybe"}},
		{name: "bad start day", env: map[string]string{"LENDING_START_DAY": "soon"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "lending.yaml")
			writeFile(t, path, tc.yaml)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "info"
	cfg.LogFormat = "json"
	var buf bytes.Buffer

	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "day", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"day":1`)
}

func TestLevel(t *testing.T) {
	cfg := Default()
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
