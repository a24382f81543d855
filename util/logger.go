package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

const LOG_FILE_NAME = "mm-server.log"
const LOG_MAX_SIZE_MB = 50
const LOG_MAX_BACKUPS = 5
const LOG_MAX_AGE_DAYS = 30

// NewLogger creates the default console slog logger.
func NewLogger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339,
	}))
}

// EnableFileLogging switches the default logger to write to both stdout and a
// rotated file under dir. An empty dir leaves console-only logging in place.
func EnableFileLogging(dir string) (*slog.Logger, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir failed: %w", err)
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(dir, LOG_FILE_NAME),
		MaxSize:    LOG_MAX_SIZE_MB,
		MaxBackups: LOG_MAX_BACKUPS,
		MaxAge:     LOG_MAX_AGE_DAYS,
		Compress:   true,
	}

	w := io.MultiWriter(os.Stdout, logFile)
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}))
	slog.SetDefault(logger)
	logger.Info("file logging enabled", "path", logFile.Filename)
	return logger, nil
}
