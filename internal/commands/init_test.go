package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeline-dev/timeline/internal/config"
)

func TestInit_CreatesConfigStoreAndLogsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "timeline"))

	for _, name := range []string{config.FileName, "timeline.db"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "%s should exist", name)
	}

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInit_SeedsDefaultAccounts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "timeline"))

	a, err := openApp(dir)
	require.NoError(t, err)
	defer a.Close()

	accounts := a.finance.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, "Cash", accounts[0].Name)
	assert.Equal(t, "Bank", accounts[1].Name)
	assert.Equal(t, "bKash", accounts[2].Name)
}

func TestInit_CustomNamespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "mine"))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "mine", cfg.Storage.Namespace)
}
