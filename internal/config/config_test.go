package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GOOGLE_CALENDAR_IDS", "GOOGLE_TASKLIST_ID", "PRIMARY_TIMEZONE", "LOG_LEVEL", "SYNC_STATE_FILE", "SYNC_DAYS", "TOKEN_DIR"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.GoogleCalendarIDs)
	assert.Equal(t, "@default", cfg.GoogleTaskListID)
	assert.Equal(t, time.UTC, cfg.PrimaryTimeZone)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sync-state.json", cfg.StateFile)
	assert.Equal(t, 7, cfg.SyncDays)
	assert.Equal(t, ".", cfg.TokenDir)
}

func TestLoad_Values(t *testing.T) {
	t.Setenv("GOOGLE_CALENDAR_IDS", "primary, team@example.com ,,")
	t.Setenv("SYNC_DAYS", "14")
	t.Setenv("PRIMARY_TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"primary", "team@example.com"}, cfg.GoogleCalendarIDs)
	assert.Equal(t, 14, cfg.SyncDays)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PRIMARY_TIMEZONE", "Nowhere/Special")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PRIMARY_TIMEZONE", "UTC")
	t.Setenv("SYNC_DAYS", "-1")
	_, err = Load()
	assert.Error(t, err)
}

func TestRequire(t *testing.T) {
	cfg := &Config{GoogleClientID: "id", GoogleCalendarIDs: []string{"primary"}}

	assert.NoError(t, cfg.Require("GOOGLE_CLIENT_ID", "GOOGLE_CALENDAR_IDS"))

	err := cfg.Require("GOOGLE_CLIENT_ID", "ICLOUD_USERNAME", "ICLOUD_CALENDAR_NAME")
	require.Error(t, err)
	assert.Equal(t, "missing required environment variables: ICLOUD_USERNAME, ICLOUD_CALENDAR_NAME", err.Error())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALBRIDGE_TEST_KEY=from-file\n"), 0o600))
	t.Setenv("CALBRIDGE_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("CALBRIDGE_TEST_KEY"))

	LoadDotEnv(path)
	assert.Equal(t, "from-file", os.Getenv("CALBRIDGE_TEST_KEY"))
}
