// Package logging configures the process logger: a human-readable console
// stream plus a rotating JSON log file for debugging. The lifecycle is
// owned by the process entry point; nothing is configured at import time.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Init.
type Options struct {
	// Dir is the log file directory. Defaults to "logs".
	Dir string
	// FileLevel is the minimum level for the log file. Defaults to Debug.
	FileLevel slog.Leveler
	// ConsoleLevel is the minimum level for stderr. Defaults to Info.
	ConsoleLevel slog.Leveler
	// ConsoleOnly disables the log file entirely.
	ConsoleOnly bool
}

// Init builds the process logger. The returned close function flushes and
// closes the log file and must be called before exit.
func Init(opts Options) (*slog.Logger, func() error, error) {
	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	if opts.FileLevel == nil {
		opts.FileLevel = slog.LevelDebug
	}
	if opts.ConsoleLevel == nil {
		opts.ConsoleLevel = slog.LevelInfo
	}

	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: opts.ConsoleLevel,
	})

	if opts.ConsoleOnly {
		return slog.New(console), func() error { return nil }, nil
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// One file name per day; lumberjack rotates within the day by size.
	filename := filepath.Join(opts.Dir,
		fmt.Sprintf("excel-translate_%s.log", time.Now().Format("20060102")))

	rotator := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
	}

	file := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
		Level: opts.FileLevel,
	})

	logger := slog.New(newTeeHandler(console, file))
	return logger, rotator.Close, nil
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", s)
	}
}
