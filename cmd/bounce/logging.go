package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	logDir      = "logs"
	logFileName = "bounce.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB, rotated on startup
)

// setupLogging installs the default slog logger
// Disabled unless debug; never writes to stdout/stderr since the terminal UI owns them
// Returns the open log file, or nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool, dir string) *os.File {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	if !debug {
		slog.SetDefault(discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.SetDefault(discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	rotErr := rotateLog(logPath, time.Now())

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(discard)
		return nil
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler).With("run", uuid.NewString()))
	if rotErr != nil {
		slog.Warn("log rotation failed, appending to current log", "err", rotErr)
	}
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string, now time.Time) error {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	if err := os.Rename(logPath, rotatedPath(logPath, now)); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}

func rotatedPath(logPath string, now time.Time) string {
	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	return fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405"), ext)
}
