// Package slog provides logging decorators for cfhelper domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// Ensure LoggingTemplateStore implements cfhelper.TemplateStore.
var _ cfhelper.TemplateStore = (*LoggingTemplateStore)(nil)

// LoggingTemplateStore wraps a TemplateStore with operation logging.
type LoggingTemplateStore struct {
	next   cfhelper.TemplateStore
	logger *slog.Logger
}

// NewLoggingTemplateStore creates a new LoggingTemplateStore.
func NewLoggingTemplateStore(next cfhelper.TemplateStore, logger *slog.Logger) *LoggingTemplateStore {
	return &LoggingTemplateStore{next: next, logger: logger}
}

// Get delegates to the wrapped store and logs the operation.
func (s *LoggingTemplateStore) Get(ctx context.Context, slots []cfhelper.TemplateSlot) (values map[cfhelper.TemplateSlot]string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("template load",
			"slots", len(slots),
			"stored", len(values),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Get(ctx, slots)
}

// Set delegates to the wrapped store and logs the operation.
func (s *LoggingTemplateStore) Set(ctx context.Context, values map[cfhelper.TemplateSlot]string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("template save",
			"slots", len(values),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Set(ctx, values)
}

// Reset delegates to the wrapped store and logs the operation.
func (s *LoggingTemplateStore) Reset(ctx context.Context, slots []cfhelper.TemplateSlot) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("template reset",
			"slots", len(slots),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Reset(ctx, slots)
}

// Watch delegates to the wrapped store.
func (s *LoggingTemplateStore) Watch(ctx context.Context) (<-chan cfhelper.TemplateChange, error) {
	return s.next.Watch(ctx)
}
