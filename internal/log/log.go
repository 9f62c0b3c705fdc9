// Package log configures the process-wide slog logger. The MCP server owns
// stdout, so log output always goes to a rotated file.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the default slog logger at filePath with rotation. Debug
// lowers the level to slog.LevelDebug.
func Setup(filePath string, debug bool) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		// Fall back to stderr rather than losing logs entirely.
		setDefault(os.Stderr, debug)
		slog.Error("failed to create log directory", "path", filepath.Dir(filePath), "error", err)
		return
	}

	setDefault(&lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}, debug)
}

func setDefault(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
