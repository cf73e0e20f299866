package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "yahoo", cfg.DataSource.Source)
	assert.Equal(t, []int{20, 10, 5}, cfg.Scan.LookbackYears)
	assert.Equal(t, []int{1, 2, 3}, cfg.Scan.ForwardMonths)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen_addr: ":9000"
data_source:
  source: stooq
scan:
  asset_class: etfs
  lookback_years: [15]
`), 0o644))
	t.Setenv("LISTEN_ADDR", ":7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.ListenAddr, "env wins over file")
	assert.Equal(t, "stooq", cfg.DataSource.Source)
	assert.Equal(t, "etfs", cfg.Scan.AssetClass)
	assert.Equal(t, []int{15}, cfg.Scan.LookbackYears)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	cfg.DataSource.Source = "bloomberg"
	assert.Error(t, cfg.Validate())

	cfg.DataSource.Source = "yahoo"
	cfg.Telegram.BotToken = "token-without-chat"
	assert.Error(t, cfg.Validate())

	cfg.Telegram.ChatID = "123"
	require.NoError(t, cfg.Validate())

	cfg.Scan.ForwardMonths = []int{0}
	assert.Error(t, cfg.Validate())
}
