package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, 8, cfg.MissingLabelCap)
	assert.Empty(t, cfg.BankHolidaysURL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen: \":9090\"\nmissing_label_cap: 5\nbank_holidays_url: https://www.gov.uk/bank-holidays.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, 5, cfg.MissingLabelCap)
	assert.Equal(t, "https://www.gov.uk/bank-holidays.json", cfg.BankHolidaysURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PRECHECK_LISTEN", ":7070")
	t.Setenv("BANK_HOLIDAYS_URL", "https://example.test/holidays.json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Listen)
	assert.Equal(t, "https://example.test/holidays.json", cfg.BankHolidaysURL)
}

func TestInvalidValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("missing_label_cap: -3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MissingLabelCap)
	assert.Equal(t, ":8080", cfg.Listen)
}
