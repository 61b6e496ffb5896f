package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// newLogger builds the process logger. The TUI owns the terminal, so logs go
// to $OBJBROWSER_DEBUG_LOG when set and are discarded otherwise.
func newLogger(level string) (*slog.Logger, func() error, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q (want debug|info|warn|error)", level)
	}

	path := strings.TrimSpace(os.Getenv("OBJBROWSER_DEBUG_LOG"))
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl})), f.Close, nil
}
