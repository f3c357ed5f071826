package mock

import (
	"context"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

var _ cfhelper.PageAugmenter = (*PageAugmenter)(nil)

// PageAugmenter is a mock implementation of cfhelper.PageAugmenter.
type PageAugmenter struct {
	InsertHeaderCellFn func(ctx context.Context, headID string, label string) error
	InsertRecordCellFn func(ctx context.Context, rowID string, recordID string) error
}

func (a *PageAugmenter) InsertHeaderCell(ctx context.Context, headID string, label string) error {
	return a.InsertHeaderCellFn(ctx, headID, label)
}

func (a *PageAugmenter) InsertRecordCell(ctx context.Context, rowID string, recordID string) error {
	return a.InsertRecordCellFn(ctx, rowID, recordID)
}
