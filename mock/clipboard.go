package mock

import (
	"context"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

var _ cfhelper.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of cfhelper.Clipboard.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}
