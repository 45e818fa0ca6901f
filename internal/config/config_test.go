package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 24, cfg.MaxSweepCruises)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WORKERS", "3")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("MAX_SWEEP_CRUISES", "8")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 8, cfg.MaxSweepCruises)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "careersim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nmax_students: 500\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 500, cfg.MaxStudents)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	require.NoError(t, ConfigureLogging("warn"))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	assert.Error(t, ConfigureLogging("loud"))
}
