package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/raw/sales_data_raw.csv", cfg.Input.Path)
	assert.Equal(t, "data/processed/sales_data_clean.csv", cfg.Output.Path)
	assert.Equal(t, "last-wins", cfg.Pipeline.CollisionPolicy)
	assert.Equal(t, 5, cfg.Pipeline.PreviewRows)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "data/raw/sales_data_raw.csv", cfg.Input.Path)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesclean.yaml")
	content := `
input:
  path: fixtures/raw.csv
output:
  path: out/clean.csv
  bom: true
pipeline:
  collision_policy: fail
  preview_rows: 10
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fixtures/raw.csv", cfg.Input.Path)
	assert.Equal(t, "out/clean.csv", cfg.Output.Path)
	assert.True(t, cfg.Output.BOM)
	assert.Equal(t, "fail", cfg.Pipeline.CollisionPolicy)
	assert.Equal(t, 10, cfg.Pipeline.PreviewRows)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched sections keep their defaults.
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesclean.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  path: from_file.csv\n"), 0644))

	t.Setenv("SALESCLEAN_INPUT_PATH", "from_env.csv")
	t.Setenv("SALESCLEAN_PIPELINE_PREVIEW_ROWS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env.csv", cfg.Input.Path)
	assert.Equal(t, 3, cfg.Pipeline.PreviewRows)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{
			name: "unknown collision policy",
			env:  map[string]string{"SALESCLEAN_PIPELINE_COLLISION_POLICY": "first-wins"},
		},
		{
			name: "negative preview rows",
			env:  map[string]string{"SALESCLEAN_PIPELINE_PREVIEW_ROWS": "-1"},
		},
		{
			name: "unknown log level",
			env:  map[string]string{"SALESCLEAN_LOGGING_LEVEL": "loud"},
		},
		{
			name: "empty input path",
			file: "input:\n  path: \"\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = filepath.Join(t.TempDir(), "salesclean.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0644))
			}
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesclean.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [not a mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
