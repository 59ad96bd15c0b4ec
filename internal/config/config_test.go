package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injectivelabs/static-tokens/internal/constants"
	"github.com/injectivelabs/static-tokens/internal/networks"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("STATIC_TOKENS_ENV", "")
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultOutDir, cfg.Output.Dir)
	assert.False(t, cfg.Output.PreserveInternal)
	assert.Equal(t, constants.CollationLocale, cfg.Output.Collation)
	assert.Empty(t, cfg.Data.Dir)
	assert.Empty(t, cfg.File)

	nets, err := cfg.NetworkList()
	require.NoError(t, err)
	assert.Equal(t, networks.All(), nets)
}

func TestLoadConfigFileFromHome(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", constants.AppName, constants.ConfigFile)
	writeFile(t, path, "output:\n  dir: build/tokens\n  preserveInternal: true\nnetworks: [mainnet]\n")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "build/tokens", cfg.Output.Dir)
	assert.True(t, cfg.Output.PreserveInternal)
	assert.Equal(t, []string{"mainnet"}, cfg.Networks)
	assert.Equal(t, constants.CollationLocale, cfg.Output.Collation)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.yaml")
	writeFile(t, path, "output:\n  dir: from-file\n")
	t.Setenv("STATIC_TOKENS_OUTPUT_DIR", "from-env")
	t.Setenv("STATIC_TOKENS_OUTPUT_COLLATION", "BYTES")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
	assert.Equal(t, constants.CollationBytes, cfg.Output.Collation)
}

func TestLoadErrors(t *testing.T) {
	home := isolate(t)

	_, err := Load(viper.New(), filepath.Join(home, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(home, "bad.yaml")
	writeFile(t, bad, "networks: [mainnet, localnet]\n")
	_, err = Load(viper.New(), bad)
	require.ErrorIs(t, err, networks.ErrUnknownNetwork)

	t.Setenv("STATIC_TOKENS_ENV", "staging")
	_, err = Load(viper.New(), "")
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{Networks: []string{"Mainnet-Sentry", "devnet", "mainnet"}}
	require.NoError(t, cfg.Normalize())
	assert.Equal(t, constants.DefaultOutDir, cfg.Output.Dir)
	assert.Equal(t, []string{"mainnet", "devnet"}, cfg.Networks)

	cfg = &Config{Output: OutputConfig{Collation: "ebcdic"}}
	require.Error(t, cfg.Normalize())
}
