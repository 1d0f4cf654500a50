package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigeonworks-llc/bank-report/pkg/summary"
)

var envKeys = []string{
	"BANK_REPORT_OUTPUT",
	"BANK_REPORT_TITLE",
	"BANK_REPORT_TOP_N",
	"BANK_REPORT_POLICY",
	"BANK_REPORT_LOG_FILE",
}

// isolate runs the test from an empty directory with no bank-report variables set.
func isolate(t *testing.T) string {
	t.Helper()

	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, summary.PolicyTruncateFirst, cfg.SelectionPolicy())
}

func TestLoadYAML(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "bank-report.yaml")
	content := `report:
  title: Household
  top_n: 5
  policy: filter-first
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Household", cfg.Report.Title)
	assert.Equal(t, 5, cfg.Report.TopN)
	assert.Equal(t, summary.PolicyFilterFirst, cfg.SelectionPolicy())
	// untouched keys keep their defaults
	assert.Equal(t, "report.md", cfg.Report.Output)
	assert.Equal(t, "bank-report.log", cfg.Log.File)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "bank-report.yml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  top_n: 5\n"), 0644))
	t.Setenv("BANK_REPORT_TOP_N", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Report.TopN)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.env")
	content := "BANK_REPORT_OUTPUT=monthly.md\nBANK_REPORT_LOG_FILE=debug.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Cleanup(func() {
		os.Unsetenv("BANK_REPORT_OUTPUT")
		os.Unsetenv("BANK_REPORT_LOG_FILE")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "monthly.md", cfg.Report.Output)
	assert.Equal(t, "debug.log", cfg.Log.File)
}

func TestLoadMissingFiles(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.env"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("BANK_REPORT_TOP_N", "three")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		expectErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero top n", func(c *Config) { c.Report.TopN = 0 }, false},
		{"negative top n", func(c *Config) { c.Report.TopN = -1 }, true},
		{"empty output", func(c *Config) { c.Report.Output = "" }, true},
		{"unknown policy", func(c *Config) { c.Report.Policy = "random" }, true},
		{"empty policy", func(c *Config) { c.Report.Policy = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
