package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// Ensure Clipboard implements cfhelper.Clipboard at compile time.
var _ cfhelper.Clipboard = (*Clipboard)(nil)

// Clipboard writes text through the observed page's clipboard, so the copied
// value lands where the user is already working. Falls back to the legacy
// execCommand path when the asynchronous clipboard API is denied.
type Clipboard struct {
	page *rod.Page
}

// NewClipboard creates a Clipboard for the given page.
func NewClipboard(page *rod.Page) *Clipboard {
	return &Clipboard{page: page}
}

// WriteText writes text to the page's clipboard.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := c.page.Context(ctx).Eval(writeClipboardJS, text); err != nil {
		return fmt.Errorf("page clipboard write: %w", err)
	}
	return nil
}

const writeClipboardJS = `async (text) => {
	try {
		await navigator.clipboard.writeText(text);
	} catch (err) {
		const ta = document.createElement('textarea');
		ta.value = text;
		document.body.appendChild(ta);
		ta.select();
		const ok = document.execCommand('copy');
		ta.remove();
		if (!ok) throw err;
	}
	return true;
}`
