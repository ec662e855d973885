// Package logging installs the process-wide slog logger backed by a rotating
// log file.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file created inside the log directory.
const FileName = "rampage.log"

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup makes a logger writing to <dir>/rampage.log the slog default and
// returns the closer for the underlying file. The file is created on the first
// write and rotated at 5 MB, keeping three compressed backups.
func Setup(dir string, debug bool) io.Closer {
	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(New(w, level))
	return w
}
