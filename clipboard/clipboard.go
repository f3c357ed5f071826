// Package clipboard provides an operating-system clipboard writer for CLI use.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// Ensure Writer implements cfhelper.Clipboard at compile time.
var _ cfhelper.Clipboard = (*Writer)(nil)

// Writer writes text to the OS clipboard.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText writes text to the OS clipboard.
func (w *Writer) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("os clipboard write: %w", err)
	}
	return nil
}
