// Package scan provides the augmentation pipeline orchestrator. It consumes
// added-element batches from a mutation source, extracts DNS records, inserts
// the user-visible cells, and serves copy requests by rendering the current
// templates.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"golang.org/x/sync/errgroup"
)

// HeaderLabel is the text of the inserted table header cell.
const HeaderLabel = "Resource ID"

// Scanner drives the extraction-and-augmentation pipeline for one page.
// Populate the exported fields before calling Run.
type Scanner struct {
	Source    cfhelper.MutationSource
	Extractor cfhelper.Extractor
	Page      cfhelper.PageAugmenter
	Templates cfhelper.TemplateStore
	Clipboard cfhelper.Clipboard
	Logger    *slog.Logger

	tracker *Tracker

	// mu guards records and templates. Batch processing runs on a single
	// goroutine, but Copy is invoked from the page binding and template
	// changes arrive on the watch goroutine.
	mu        sync.RWMutex
	records   map[string]cfhelper.Record
	templates map[cfhelper.TemplateSlot]string
}

// Run performs the initial template load, then processes mutation batches and
// template change notifications until ctx is canceled or the source closes.
// The mutation source's first batch covers the full document, so the initial
// scan and the incremental re-scans share one code path.
func (s *Scanner) Run(ctx context.Context) error {
	s.init()
	s.loadTemplates(ctx)

	batches, err := s.Source.Batches(ctx)
	if err != nil {
		return fmt.Errorf("starting mutation source: %w", err)
	}

	changes, err := s.Templates.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching template store: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for batch := range batches {
			s.processBatch(ctx, batch)
		}
		return nil
	})

	g.Go(func() error {
		for change := range changes {
			s.mu.Lock()
			s.templates[change.Slot] = change.Value
			s.mu.Unlock()
			s.logger().Info("template updated", "slot", string(change.Slot))
		}
		return nil
	})

	return g.Wait()
}

// Copy renders the record's template for the given slot and writes the result
// to the clipboard. The rendered text is returned so callers can display it.
// Returns ENOTFOUND if no record with that ID has been extracted on this page.
func (s *Scanner) Copy(ctx context.Context, recordID string, slot cfhelper.TemplateSlot) (string, error) {
	s.init()

	s.mu.RLock()
	rec, ok := s.records[recordID]
	tpl, stored := s.templates[slot]
	s.mu.RUnlock()

	if !ok {
		return "", cfhelper.Errorf(cfhelper.ENOTFOUND, "record %q not found on this page", recordID)
	}
	if !stored {
		tpl = cfhelper.DefaultTemplate(slot)
	}

	out := cfhelper.Render(tpl, cfhelper.NewTemplateVars(rec))
	if err := s.Clipboard.WriteText(ctx, out); err != nil {
		return out, fmt.Errorf("clipboard write: %w", err)
	}
	return out, nil
}

// processBatch drains one added-element batch. Every failure degrades to
// "skip this element this cycle": the element stays unmarked and is retried
// when the next batch mentions it.
func (s *Scanner) processBatch(ctx context.Context, batch cfhelper.ElementBatch) {
	zone, ok := cfhelper.ZoneFromURL(batch.PageURL)
	if !ok {
		s.logger().Debug("page is not a DNS records page, headers only",
			"batch", batch.ID, "url", batch.PageURL)
	}

	for _, el := range batch.Added {
		nodes, err := s.Extractor.Discover(el.HTML)
		if err != nil {
			s.logger().Warn("fragment discovery failed", "batch", batch.ID, "err", err)
			continue
		}
		s.augmentHeads(ctx, nodes.HeadIDs)
		s.augmentRows(ctx, nodes.Rows, zone)
	}
}

// augmentHeads inserts the extra header cell into each unprocessed header row.
func (s *Scanner) augmentHeads(ctx context.Context, headIDs []string) {
	for _, headID := range headIDs {
		if s.tracker.Processed(headID) {
			continue
		}
		if err := s.Page.InsertHeaderCell(ctx, headID, HeaderLabel); err != nil {
			s.logger().Warn("header augmentation failed", "head", headID, "err", err)
			continue
		}
		s.tracker.Mark(headID)
		s.logger().Info("header augmented", "head", headID)
	}
}

// augmentRows extracts and augments each unprocessed row candidate, retaining
// the extracted record for later copy requests. The processed check comes
// before extraction so a marked row is never re-extracted.
func (s *Scanner) augmentRows(ctx context.Context, rows []cfhelper.RowCandidate, zone string) {
	for _, row := range rows {
		if row.NodeID == "" {
			// Unstamped markup cannot be targeted in the live page.
			s.logger().Debug("skipping unstamped row")
			continue
		}
		if s.tracker.Processed(row.NodeID) {
			continue
		}

		rec, ok := s.Extractor.Extract(row, zone)
		if !ok {
			// Not extractable this cycle; stays unmarked for retry.
			continue
		}

		if err := s.Page.InsertRecordCell(ctx, row.NodeID, rec.ID); err != nil {
			s.logger().Warn("row augmentation failed",
				"row", row.NodeID, "record", rec.ID, "err", err)
			continue
		}
		s.tracker.Mark(row.NodeID)

		s.mu.Lock()
		s.records[rec.ID] = rec
		s.mu.Unlock()

		s.logger().Info("row augmented", "record", rec.ID, "type", rec.Type, "name", rec.Name)
	}
}

// loadTemplates fetches the stored templates. A load failure is logged and the
// built-in defaults are used instead; it never aborts the scanner.
func (s *Scanner) loadTemplates(ctx context.Context) {
	values, err := s.Templates.Get(ctx, cfhelper.TemplateSlots)
	if err != nil {
		s.logger().Warn("template load failed, using defaults", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for slot, value := range values {
		s.templates[slot] = value
	}
}

func (s *Scanner) init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tracker == nil {
		s.tracker = NewTracker()
	}
	if s.records == nil {
		s.records = make(map[string]cfhelper.Record)
	}
	if s.templates == nil {
		s.templates = make(map[cfhelper.TemplateSlot]string)
	}
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
