//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	fileSettings := func(mutate func(*LoggerSettings)) *LoggerSettings {
		s := &LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeFile,
			FilePath:   "/var/log/dukayetu/api.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		if mutate != nil {
			mutate(s)
		}
		return s
	}

	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"console logger", &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, false},
		{"file logger with rotation", fileSettings(nil), false},
		{"missing log level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"unknown log level", &LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole}, true},
		{"missing log type", &LoggerSettings{LogLevel: LogLevelInfo}, true},
		{"file logger without path", fileSettings(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file logger max size too small", fileSettings(func(s *LoggerSettings) { s.MaxSize = 0 }), true},
		{"file logger max size too large", fileSettings(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"file logger too many backups", fileSettings(func(s *LoggerSettings) { s.MaxBackups = 11 }), true},
		{"file logger max age out of range", fileSettings(func(s *LoggerSettings) { s.MaxAge = 400 }), true},
		{"console logger ignores rotation", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
