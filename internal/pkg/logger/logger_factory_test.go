//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	shared.log = nil
	shared.err = nil
	shared.once = sync.Once{}
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
		withFile bool
	}{
		{
			name:     "console logger",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
		},
		{
			name: "file logger with rotation",
			settings: &config.LoggerSettings{
				LogLevel:   config.LogLevelInfo,
				LogType:    config.LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			withFile: true,
		},
		{
			name:     "invalid log level",
			settings: &config.LoggerSettings{LogLevel: "loud", LogType: config.LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "unsupported log type",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"},
			wantErr:  true,
		},
		{
			name:     "file logger missing rotation settings",
			settings: &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "/tmp/shop.log"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			if tt.withFile {
				tt.settings.FilePath = filepath.Join(t.TempDir(), "api.log")
			}

			err := InitLogger(tt.settings)

			if tt.wantErr {
				assert.Error(t, err)

				log, getErr := GetLogger()
				assert.Error(t, getErr)
				assert.Nil(t, log)
				return
			}

			require.NoError(t, err)

			log, err := GetLogger()
			require.NoError(t, err)
			require.NotNil(t, log)

			if tt.withFile {
				log.Info("shop api started")
				_, err := os.Stat(tt.settings.FilePath)
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := GetLogger()
	assert.Error(t, err)
	assert.Nil(t, log)
	assert.ErrorIs(t, err, ErrLoggerNotInitialized)
}

func TestInitLogger_Idempotent(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	// A second call keeps the first instance
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestNewLogger_DoesNotTouchSingleton(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := NewLogger(&config.LoggerSettings{LogLevel: config.LogLevelWarning, LogType: config.LogTypeConsole})
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = GetLogger()
	assert.Error(t, err)
}

func TestNewLogger_NilSettings(t *testing.T) {
	log, err := NewLogger(nil)
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestInitLogger_FirstFailureSticks(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.Error(t, InitLogger(&config.LoggerSettings{LogLevel: "loud", LogType: config.LogTypeConsole}))

	// A valid retry does not replace the failed attempt
	assert.Error(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	_, err := GetLogger()
	assert.ErrorIs(t, err, ErrLoggerNotInitialized)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "cart", formatArgs("cart"))
	assert.Equal(t, "Created product with id 7", formatArgs("Created product with id ", 7))
}
