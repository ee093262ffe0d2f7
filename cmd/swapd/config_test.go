package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	home, err := ioutil.TempDir("", "swapd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:26658", cfg.ABCI.Address)
	assert.Equal(t, "goleveldb", cfg.DB.Backend)
	assert.Equal(t, filepath.Join(home, "data"), cfg.DB.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Debug)
}

func TestConfigFileAndEnvironment(t *testing.T) {
	home, err := ioutil.TempDir("", "swapd")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	_, err = WriteConfig(home, "swap-test-1")
	require.NoError(t, err)

	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "swap-test-1", cfg.ChainID)

	os.Setenv("SWAPD_DB_BACKEND", "memdb")
	defer os.Unsetenv("SWAPD_DB_BACKEND")
	os.Setenv("SWAPD_DB_DIR", "/var/lib/swapd")
	defer os.Unsetenv("SWAPD_DB_DIR")

	cfg, err = LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "memdb", cfg.DB.Backend)
	assert.Equal(t, "/var/lib/swapd", cfg.DB.Dir)
	assert.Equal(t, "swap-test-1", cfg.ChainID)
}

func TestFilterLogger(t *testing.T) {
	_, err := filterLogger(nil, "nonsense")
	assert.Error(t, err)
}
