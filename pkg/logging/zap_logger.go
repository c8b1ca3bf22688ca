// Package logging provides the zap-backed logger shared by the monitor and
// the sensor simulator. It satisfies both components' Logger contracts.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// EnvDevelopment selects the human friendly, debug level configuration.
const EnvDevelopment = "dev"

// ZapLogger adapts a zap SugaredLogger to the printf-style Logger contract.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// Debug logs a diagnostic message.
func (l *ZapLogger) Debug(msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}

// Info logs an informational message.
func (l *ZapLogger) Info(msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

// Error logs an error message.
func (l *ZapLogger) Error(msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}

// With returns a logger that adds the given key/value pairs to every entry.
func (l *ZapLogger) With(args ...interface{}) *ZapLogger {
	return &ZapLogger{sugar: l.sugar.With(args...)}
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// NewZapLogger builds a logger for the given environment. "dev" gives a
// debug level console logger, anything else the production JSON logger.
// When logFile is not empty entries are also appended to that file.
func NewZapLogger(env string, logFile string) (*ZapLogger, error) {
	var config zap.Config
	if env == EnvDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if logFile != "" {
		config.OutputPaths = append(config.OutputPaths, logFile)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: logger.Sugar()}
}
