// Package logging routes the standard logger to a rotating file. The TUI owns
// the terminal, so nothing is logged to stdout or stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jask/ddlist/internal/config"
)

// Setup points the standard logger at cfg.Path and returns the closer for the
// underlying file.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	if cfg.Path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	w := New(cfg)
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("ddlist ")
	return w, nil
}

// New returns a rotating writer for cfg.
func New(cfg config.LogConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   cfg.Compress,
	}
}
