package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joshuapare/lnkkit/pkg/types"
)

// Config is the lnkctl configuration. Precedence, highest first: command
// line flags, LNKCTL_* environment variables, the config file, defaults.
type Config struct {
	Log         LogConfig    `mapstructure:"log"`
	CodePage    string       `mapstructure:"codepage" validate:"required"`
	MaxFileSize ByteSize     `mapstructure:"max_file_size" validate:"gte=0"`
	Scan        ScanConfig   `mapstructure:"scan"`
	Output      OutputConfig `mapstructure:"output"`

	source string // config file used, empty when none was found
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN WARNING ERROR debug info warn warning error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
	Output string `mapstructure:"output" validate:"required"`
}

// ScanConfig configures the scan command.
type ScanConfig struct {
	Workers int `mapstructure:"workers" validate:"min=1"`
}

// OutputConfig selects how reports are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
}

// flagKeys binds command line flags to config keys.
var flagKeys = map[string]string{
	"codepage": "codepage",
	"format":   "output.format",
	"workers":  "scan.workers",
}

func defaultConfig() *Config {
	return &Config{
		Log:         LogConfig{Level: "warn", Format: "text", Output: "stderr"},
		CodePage:    "windows-1252",
		MaxFileSize: ByteSize(types.DefaultMaxFileSize),
		Scan:        ScanConfig{Workers: runtime.NumCPU()},
		Output:      OutputConfig{Format: "text"},
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultConfig()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("codepage", d.CodePage)
	v.SetDefault("max_file_size", int64(d.MaxFileSize))
	v.SetDefault("scan.workers", d.Scan.Workers)
	v.SetDefault("output.format", d.Output.Format)
}

// loadConfig reads configuration from path (or lnkctl.yaml in the working
// directory and the user config directory), the environment and flags.
// A missing default config file is not an error; a missing explicit one is.
func loadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Environment variables use the LNKCTL_ prefix, e.g. LNKCTL_LOG_LEVEL=debug
	v.SetEnvPrefix("LNKCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lnkctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "lnkctl"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.source = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// configDecodeHooks replaces viper's default hooks, so the string to slice
// conversion it would have applied is listed again.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		byteSizeDecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// byteSizeDecodeHook converts strings such as "16MiB" and plain numbers to
// ByteSize.
func byteSizeDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(ByteSize(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return ParseByteSize(v)
		case int:
			return ByteSize(v), nil
		case int64:
			return ByteSize(v), nil
		case uint64:
			return ByteSize(v), nil
		case float64:
			// YAML numbers may arrive as float64
			return ByteSize(v), nil
		default:
			return data, nil
		}
	}
}

var configValidator = newValidator()

// newValidator reports fields by their config key rather than the Go name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func (c *Config) validate() error {
	c.Output.Format = strings.ToLower(c.Output.Format)

	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", key, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s (got %v)", key, fe.Tag(), fe.Value()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
