package config_test

import (
	"testing"

	"dj-launcher/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/FuroreBalistico/DJ-app.git", cfg.Git.URL)
	assert.Equal(t, "main", cfg.Git.Branch)
	assert.Equal(t, "DJ-app-clone", cfg.Launch.Dir)
	assert.Equal(t, "src", cfg.Launch.ServeRoot)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "python3", cfg.Server.Command)
	assert.Equal(t, 5, cfg.Server.ReadyAttempts)
	assert.Equal(t, 400, cfg.Server.ReadyIntervalMS)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("GIT_BRANCH", "dev")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LAUNCH_DIR", "/tmp/dj")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Git.Branch)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "/tmp/dj", cfg.Launch.Dir)
}
