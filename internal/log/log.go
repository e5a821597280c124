// Package log provides the logging facade. All diagnostics go to stderr:
// stdout is reserved for the report.
package log

import (
	"sync"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger
}

var (
	mu     sync.Mutex
	logger Logger
)

// GetLogger returns the process logger, initializing it with defaults on
// first use so library tests never hit a nil logger.
func GetLogger() Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newAdapter(DefaultConfig())
	}
	return logger
}

// Init configures the process logger. Later calls replace the earlier
// configuration; the analyzer calls it once, before any decoding.
func Init(cfg *Config) error {
	adapter, err := buildAdapter(cfg)
	if err != nil {
		return err
	}
	mu.Lock()
	logger = adapter
	mu.Unlock()
	return nil
}
