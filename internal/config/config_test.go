package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CAFFEROT_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ".local", "share", "cafferot", "cafferot.db"), cfg.Database.Path)
	require.Equal(t, "me", cfg.UI.OwnerID)
	require.Equal(t, 100.0, cfg.UI.WheelStep)
	require.Equal(t, 60, cfg.UI.FrameRate)
	require.Equal(t, 5*time.Second, cfg.Feed.Interval)
	require.False(t, cfg.UI.Dark)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "cafferot.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
dark = true
owner_id = "alice"
wheel_step = 50

[feed]
interval = "0s"
`), 0o600))
	t.Setenv("CAFFEROT_CONFIG", path)
	t.Setenv("CAFFEROT_DATABASE_PATH", "/tmp/override.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.UI.Dark)
	require.Equal(t, "alice", cfg.UI.OwnerID)
	require.Equal(t, 50.0, cfg.UI.WheelStep)
	require.Equal(t, time.Duration(0), cfg.Feed.Interval)
	require.Equal(t, "/tmp/override.db", cfg.Database.Path)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("CAFFEROT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.Dark = true
	cfg.Feed.Interval = 2 * time.Second
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.True(t, again.UI.Dark)
	require.Equal(t, 2*time.Second, again.Feed.Interval)
}
