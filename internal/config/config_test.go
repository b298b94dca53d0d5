package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, DefaultServerURL, s.ServerURL)
	assert.Equal(t, DefaultChartW, s.ChartWidth)
	assert.Positive(t, s.RequestTimeoutSec)
}

func TestDefault_EnvOverride(t *testing.T) {
	t.Setenv("GAMEFORGE_SERVER", "http://example.test:9000")
	assert.Equal(t, "http://example.test:9000", Default().ServerURL)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameforge.yaml")
	want := &Settings{
		ServerURL:         "http://sim.internal:8000",
		RequestTimeoutSec: 15,
		ChartWidth:        100,
		ChartHeight:       20,
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	s := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, DefaultServerURL, s.ServerURL)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gameforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://other:1234\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://other:1234", s.ServerURL)
	assert.Equal(t, DefaultChartW, s.ChartWidth)
}
