// SPDX-License-Identifier: Apache-2.0

// Package logger wraps log/slog with the application's output policy:
// structured JSON to a state-directory file, plus stderr unless the TUI
// owns the terminal.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// logFilePath determines the application log file location per the XDG
// base directory spec.
func logFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "trel", "app.log"), nil
}

// Init configures the default logger. It must be called once at startup;
// isTUI suppresses the stderr writer so log lines cannot corrupt the
// alternate screen.
func Init(isTUI bool) {
	var writers []io.Writer

	path, err := logFilePath()
	if err == nil {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err == nil {
			// Closed by the OS on exit; acceptable for a CLI tool.
			file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
			if err == nil {
				writers = append(writers, file)
			} else {
				fmt.Fprintf(os.Stderr, "Warning: could not open log file %s: %v\n", path, err)
			}
		}
	}

	if !isTUI {
		writers = append(writers, os.Stderr)
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = os.Stderr
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	level := slog.LevelInfo
	if os.Getenv("TREL_DEBUG") != "" {
		level = slog.LevelDebug
	}
	defaultLogger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

func get() *slog.Logger {
	if defaultLogger == nil {
		Init(false)
	}
	return defaultLogger
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// Errorf logs a formatted error message for call sites that have no
// structured fields to attach.
func Errorf(format string, v ...any) {
	get().Error(fmt.Sprintf(format, v...))
}
