package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
)

// ErrLoggerNotInitialized is returned by GetLogger before InitLogger ran
var ErrLoggerNotInitialized = errors.New("logger not initialized: call InitLogger first")

// shared is the process wide logger installed by the shop-api and shop-cli
// entrypoints. Everything below them receives it through constructors.
var shared struct {
	once sync.Once
	log  Logger
	err  error
}

// critical has no slog level of its own and is logged as error
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger installs the shared logger. Only the first call builds one, later
// calls report the outcome of that first attempt.
func InitLogger(settings *config.LoggerSettings) error {
	shared.once.Do(func() {
		shared.log, shared.err = NewLogger(settings)
	})
	return shared.err
}

// GetLogger returns the shared logger
func GetLogger() (Logger, error) {
	if shared.log == nil {
		return nil, ErrLoggerNotInitialized
	}
	return shared.log, nil
}

// NewLogger builds a console or rotated file logger from settings. The shared
// logger is left alone.
func NewLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("logger settings are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	}
	if settings.LogType == config.LogTypeConsole {
		return NewConsoleLogger(settings.LogLevel), nil
	}
	return nil, fmt.Errorf("log type %q is not supported", settings.LogType)
}

// parseLevel falls back to info for names it does not know
func parseLevel(name string) slog.Level {
	if level, ok := levels[name]; ok {
		return level
	}
	return slog.LevelInfo
}
