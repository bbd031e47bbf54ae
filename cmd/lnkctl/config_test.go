package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/pkg/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lnkctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "windows-1252", cfg.CodePage)
	assert.Equal(t, ByteSize(types.DefaultMaxFileSize), cfg.MaxFileSize)
	assert.Equal(t, runtime.NumCPU(), cfg.Scan.Workers)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Empty(t, cfg.source)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
codepage: cp437
max_file_size: 4096
scan:
  workers: 3
output:
  format: YAML
`)
	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "cp437", cfg.CodePage)
	assert.Equal(t, ByteSize(4096), cfg.MaxFileSize)
	assert.Equal(t, 3, cfg.Scan.Workers)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, path, cfg.source)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "codepage: cp437\nscan:\n  workers: 3\n")
	t.Setenv("LNKCTL_CODEPAGE", "shift_jis")
	t.Setenv("LNKCTL_SCAN_WORKERS", "5")

	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "shift_jis", cfg.CodePage)
	assert.Equal(t, 5, cfg.Scan.Workers)
}

func TestLoadConfig_FlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, "codepage: cp437\noutput:\n  format: yaml\n")
	t.Setenv("LNKCTL_OUTPUT_FORMAT", "text")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("codepage", "", "")
	flags.String("format", "", "")
	flags.Int("workers", 0, "")
	require.NoError(t, flags.Parse([]string{"--format", "json"}))

	cfg, err := loadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "cp437", cfg.CodePage, "unset flag must not override the file")
	assert.Equal(t, runtime.NumCPU(), cfg.Scan.Workers, "unset flag must not override the default")
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "log: [unterminated"), nil)
		assert.Error(t, err)
	})
	t.Run("unknown output format", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "output:\n  format: xml\n"), nil)
		assert.ErrorContains(t, err, "output.format")
	})
	t.Run("zero workers", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "scan:\n  workers: 0\n"), nil)
		assert.ErrorContains(t, err, "scan.workers")
	})
	t.Run("bad log format", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "log:\n  format: xml\n"), nil)
		assert.ErrorContains(t, err, "log.format")
	})
	t.Run("bad size unit", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "max_file_size: 12parsecs\n"), nil)
		assert.ErrorContains(t, err, "unknown byte size unit")
	})
	t.Run("negative size", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "max_file_size: -1\n"), nil)
		assert.ErrorContains(t, err, "max_file_size")
	})
}

func TestLoadConfig_ByteSizeUnits(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "max_file_size: 16MiB\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 16*MiB, cfg.MaxFileSize)

	t.Setenv("LNKCTL_MAX_FILE_SIZE", "512KiB")
	cfg, err = loadConfig(writeConfig(t, "max_file_size: 16MiB\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 512*KiB, cfg.MaxFileSize)
}

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		in      string
		want    ByteSize
		wantErr bool
	}{
		{"4096", 4096, false},
		{"1k", 1000, false},
		{"2KiB", 2048, false},
		{"1.5MiB", 1572864, false},
		{" 3 gb ", 3_000_000_000, false},
		{"", 0, true},
		{"-5", 0, true},
		{"10XB", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseByteSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestByteSizeString(t *testing.T) {
	assert.Equal(t, "512B", ByteSize(512).String())
	assert.Equal(t, "2.00KiB", (2 * KiB).String())
	assert.Equal(t, "16.00MiB", (16 * MiB).String())
}
