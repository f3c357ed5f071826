package slog

import (
	"context"
	"log/slog"
	"time"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// Ensure LoggingClipboard implements cfhelper.Clipboard.
var _ cfhelper.Clipboard = (*LoggingClipboard)(nil)

// LoggingClipboard wraps a Clipboard with write logging.
type LoggingClipboard struct {
	next   cfhelper.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next cfhelper.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// WriteText delegates to the wrapped clipboard and logs the operation.
func (c *LoggingClipboard) WriteText(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clipboard write",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.WriteText(ctx, text)
}
