package main

import (
	"context"
	"fmt"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/mikepilat/chrome-cloudflare-helper/goquery"
	"github.com/mikepilat/chrome-cloudflare-helper/rod"
	"github.com/mikepilat/chrome-cloudflare-helper/scan"
	cfslog "github.com/mikepilat/chrome-cloudflare-helper/slog"
)

// Run attaches to the dashboard page and runs the augmentation pipeline until
// interrupted.
func (c *WatchCmd) Run(deps *Dependencies) error {
	scanner := &scan.Scanner{
		Extractor: goquery.NewExtractor(),
		Templates: deps.Templates,
		Logger:    deps.Logger,
	}

	opts := []rod.SourceOption{
		rod.WithLogger(deps.Logger),
		rod.WithCopyHandler(func(ctx context.Context, recordID string, slot cfhelper.TemplateSlot) error {
			_, err := scanner.Copy(ctx, recordID, slot)
			return err
		}),
	}

	var (
		src *rod.Source
		err error
	)
	if c.ControlURL != "" {
		src, err = rod.NewSourceFromControlURL(c.ControlURL, opts...)
	} else {
		src, err = rod.NewSource(opts...)
	}
	if err != nil {
		return fmt.Errorf("starting browser: %w", err)
	}
	defer src.Close()

	if err := src.Open(deps.Ctx, c.URL); err != nil {
		return fmt.Errorf("opening %q: %w", c.URL, err)
	}

	scanner.Source = src
	scanner.Page = rod.NewAugmenter(src.Page())
	scanner.Clipboard = cfslog.NewLoggingClipboard(rod.NewClipboard(src.Page()), deps.Logger)

	fmt.Fprintf(deps.Stdout, "Watching %s. Press Ctrl+C to stop.\n", c.URL)

	return scanner.Run(deps.Ctx)
}
