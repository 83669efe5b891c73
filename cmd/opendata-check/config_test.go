package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(256*1024*1024), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "./resultados", cfg.Storage.ResultsDir)
	assert.Equal(t, "./logos", cfg.Report.AssetsDir)
	assert.Empty(t, cfg.Report.SequencePrefix)
	assert.Equal(t, []string{"fecha"}, cfg.Validation.DateColumnTokens)
	assert.Equal(t, 5, cfg.Validation.MaxExamples)
	assert.Len(t, cfg.Report.Signature, 3)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_FromFile(t *testing.T) {
	configContent := `
server:
  host: "0.0.0.0"
  port: 8080
  max_upload_bytes: 1048576

storage:
  results_dir: "/tmp/resultados"

report:
  sequence_prefix: "DGDTP"
  place: "Toluca"

validation:
  date_column_tokens: ["fecha", "periodo"]
  max_examples: 3

log:
  level: "debug"
  format: "json"
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, int64(1048576), cfg.Server.MaxUploadBytes)
	assert.Equal(t, "/tmp/resultados", cfg.Storage.ResultsDir)
	assert.Equal(t, "DGDTP", cfg.Report.SequencePrefix)
	assert.Equal(t, "Toluca", cfg.Report.Place)
	assert.Equal(t, []string{"fecha", "periodo"}, cfg.Validation.DateColumnTokens)
	assert.Equal(t, 3, cfg.Validation.MaxExamples)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ODCHECK_SERVER_PORT", "9090")
	t.Setenv("ODCHECK_STORAGE_RESULTS_DIR", "/var/lib/odcheck")
	t.Setenv("ODCHECK_REPORT_SEQUENCE_PREFIX", "UIGP")
	t.Setenv("ODCHECK_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/var/lib/odcheck", cfg.Storage.ResultsDir)
	assert.Equal(t, "UIGP", cfg.Report.SequencePrefix)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReportConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, ReportConfig{}.Location())
	assert.Equal(t, time.UTC, ReportConfig{TimeZone: "Not/AZone"}.Location())
}

func TestDateLine(t *testing.T) {
	day := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Ciudad de México, a 18 de octubre de 2026", dateLine("Ciudad de México", day))
	assert.Equal(t, "1 de enero de 2025", dateLine("", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 de diciembre de 2025", dateLine("", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

func TestLogLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		"error":   "error",
		"":        "info",
		"verbose": "info",
	}
	for in, want := range tests {
		assert.Equal(t, want, logLevel(in).String(), in)
	}
}
