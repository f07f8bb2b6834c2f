package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/ripeness/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(viper.New(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, config.DefaultDBPath(), cfg.DBPath)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfgFile := filepath.Join(dir, "ripeness.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("log-level: debug\nworkers: 4\ndb: /from/file.db\n"), 0644))

	t.Setenv("RIPENESS_WORKERS", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(config.KeyDB, "", "")
	require.NoError(t, flags.Parse([]string{"--db", "/from/flag.db"}))

	cfg, err := config.Load(viper.New(), flags, cfgFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "/from/flag.db", cfg.DBPath)
}

func TestLoad_HyphenatedKeysFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	logFile := filepath.Join(t.TempDir(), "ripeness.log")
	t.Setenv("RIPENESS_LOG_LEVEL", "debug")
	t.Setenv("RIPENESS_LOG_FILE", logFile)

	cfg, err := config.Load(viper.New(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, logFile, cfg.LogFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := config.Load(viper.New(), nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
