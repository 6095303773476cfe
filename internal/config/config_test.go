package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Namespace = "mine"
	cfg.Display.Currency = "$"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Storage.Namespace)
	assert.Equal(t, "timeline.db", got.Storage.File)
	assert.Equal(t, "$", got.Display.Currency)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("display:\n  currency: \"$\"\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$", got.Display.Currency)
	assert.Equal(t, "timeline", got.Storage.Namespace)
}
