package log

// Config controls the logger. Embedded under the `log:` key of the
// analyzer configuration.
type Config struct {
	Level   string     `mapstructure:"level"`
	Pattern string     `mapstructure:"pattern"`
	Time    string     `mapstructure:"time"`
	File    FileConfig `mapstructure:"file"`
}

// FileConfig adds a rotating file appender next to stderr.
type FileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`    // megabytes
	MaxBackups int    `mapstructure:"max_backups"` // rotated files kept
	MaxAge     int    `mapstructure:"max_age"`     // days
	Compress   bool   `mapstructure:"compress"`
}

// DefaultConfig is warn-level stderr logging with no file appender.
func DefaultConfig() *Config {
	return &Config{
		Level:   "warn",
		Pattern: "%time [%level] %field%msg%n",
		Time:    "2006-01-02 15:04:05",
	}
}
