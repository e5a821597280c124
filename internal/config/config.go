// Package config handles analyzer configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/tracestat/internal/log"
)

// Report output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the top-level analyzer configuration.
type Config struct {
	Log    log.Config   `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig controls the renderer.
type ReportConfig struct {
	Output string `mapstructure:"output"` // text | json | yaml
}

// Load builds the configuration from defaults, an optional config file,
// and TRACESTAT_* environment overrides (e.g. TRACESTAT_LOG_LEVEL). An
// empty path skips the file entirely — the analyzer must run with zero
// setup.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("TRACESTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks cross-field constraints viper cannot express.
func (c *Config) Validate() error {
	switch c.Report.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported report output %q (must be text, json or yaml)", c.Report.Output)
	}
	if c.Log.File.Enabled && c.Log.File.Path == "" {
		return fmt.Errorf("log file appender requires 'log.file.path'")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := log.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.pattern", def.Pattern)
	v.SetDefault("log.time", def.Time)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.max_size", 10)
	v.SetDefault("log.file.max_backups", 3)
	v.SetDefault("log.file.max_age", 7)

	v.SetDefault("report.output", OutputText)
}
