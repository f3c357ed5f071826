package mock

import (
	"context"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

var _ cfhelper.TemplateStore = (*TemplateStore)(nil)

// TemplateStore is a mock implementation of cfhelper.TemplateStore.
type TemplateStore struct {
	GetFn   func(ctx context.Context, slots []cfhelper.TemplateSlot) (map[cfhelper.TemplateSlot]string, error)
	SetFn   func(ctx context.Context, values map[cfhelper.TemplateSlot]string) error
	ResetFn func(ctx context.Context, slots []cfhelper.TemplateSlot) error
	WatchFn func(ctx context.Context) (<-chan cfhelper.TemplateChange, error)
}

func (s *TemplateStore) Get(ctx context.Context, slots []cfhelper.TemplateSlot) (map[cfhelper.TemplateSlot]string, error) {
	return s.GetFn(ctx, slots)
}

func (s *TemplateStore) Set(ctx context.Context, values map[cfhelper.TemplateSlot]string) error {
	return s.SetFn(ctx, values)
}

func (s *TemplateStore) Reset(ctx context.Context, slots []cfhelper.TemplateSlot) error {
	return s.ResetFn(ctx, slots)
}

func (s *TemplateStore) Watch(ctx context.Context) (<-chan cfhelper.TemplateChange, error) {
	return s.WatchFn(ctx)
}
