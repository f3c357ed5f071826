// Package rod implements the live-browser side of the pipeline using Chrome
// automation: the mutation source, the page augmenter, and the in-page
// clipboard.
package rod

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/ysmood/gson"
)

//go:embed observer.js
var observerJS string

// Ensure Source implements cfhelper.MutationSource at compile time.
var _ cfhelper.MutationSource = (*Source)(nil)

// CopyFunc handles a copy request raised by the in-page controls.
type CopyFunc func(ctx context.Context, recordID string, slot cfhelper.TemplateSlot) error

// Source streams added-element batches from a live browser page. A dedicated
// observer script stamps tables, headers, and record rows with node IDs and
// reports added subtrees through an exposed binding.
type Source struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	logger   *slog.Logger

	copyFn CopyFunc

	mu       sync.Mutex
	finished bool
	seq      uint64
	ch       chan cfhelper.ElementBatch
	streamCx context.Context
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) SourceOption {
	return func(s *Source) { s.logger = logger }
}

// WithCopyHandler wires the in-page copy buttons to fn. Button feedback is
// shown only when fn returns nil.
func WithCopyHandler(fn CopyFunc) SourceOption {
	return func(s *Source) { s.copyFn = fn }
}

// NewSource launches a visible Chrome browser and prepares a page for
// observation. The browser is headful: the user logs into the dashboard and
// keeps working in it while the helper watches.
//
// Close must be called when the Source is no longer needed.
func NewSource(opts ...SourceOption) (*Source, error) {
	s := &Source{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	l := launcher.New().Headless(false).Leakless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	s.browser = browser
	s.launcher = l
	return s, nil
}

// NewSourceFromControlURL attaches to an already-running browser via its
// DevTools control URL instead of launching one.
func NewSourceFromControlURL(controlURL string, opts ...SourceOption) (*Source, error) {
	s := &Source{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	s.browser = browser
	return s, nil
}

// Open navigates a fresh page to the given URL and waits for it to load.
func (s *Source) Open(ctx context.Context, url string) error {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return fmt.Errorf("creating page: %w", err)
	}
	s.page = page.Context(ctx)

	if err := s.page.Navigate(url); err != nil {
		return fmt.Errorf("navigating to %q: %w", url, err)
	}
	return s.page.WaitLoad()
}

// Page returns the observed page for collaborators (augmenter, clipboard).
// Valid after Open.
func (s *Source) Page() *rod.Page {
	return s.page
}

// Batches installs the observer script and returns the batch stream. The
// first batch covers the full document; later batches carry one entry per
// added subtree. The channel is closed when ctx is canceled.
func (s *Source) Batches(ctx context.Context) (<-chan cfhelper.ElementBatch, error) {
	if s.page == nil {
		return nil, cfhelper.Errorf(cfhelper.EINVALID, "source has no open page; call Open first")
	}

	s.mu.Lock()
	s.ch = make(chan cfhelper.ElementBatch, 64)
	s.streamCx = ctx
	s.mu.Unlock()

	stopEmit, err := s.page.Expose("cfhEmit", s.onEmit)
	if err != nil {
		return nil, fmt.Errorf("exposing emit binding: %w", err)
	}

	stopCopy, err := s.page.Expose("cfhCopy", s.onCopy)
	if err != nil {
		return nil, fmt.Errorf("exposing copy binding: %w", err)
	}

	if _, err := s.page.Eval(observerJS); err != nil {
		return nil, fmt.Errorf("installing observer script: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = stopEmit()
		_ = stopCopy()
		s.finish()
	}()

	return s.ch, nil
}

// Close releases browser resources.
func (s *Source) Close() error {
	s.finish()
	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
	return err
}

// onEmit decodes one observer payload into an ElementBatch and delivers it.
func (s *Source) onEmit(payload gson.JSON) (interface{}, error) {
	var added []cfhelper.AddedElement
	for _, el := range payload.Get("added").Arr() {
		added = append(added, cfhelper.AddedElement{
			NodeID: el.Get("id").Str(),
			HTML:   el.Get("html").Str(),
		})
	}
	if len(added) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return nil, nil
	}

	batch := cfhelper.ElementBatch{
		ID:      uuid.NewString(),
		Seq:     s.seq,
		PageURL: payload.Get("url").Str(),
		Added:   added,
	}
	s.seq++

	select {
	case s.ch <- batch:
	case <-s.streamCx.Done():
	}
	return nil, nil
}

// onCopy dispatches an in-page copy request to the configured handler and
// reports the outcome back to the page script.
func (s *Source) onCopy(payload gson.JSON) (interface{}, error) {
	if s.copyFn == nil {
		return map[string]bool{"ok": false}, nil
	}

	recordID := payload.Get("recordId").Str()
	slot := cfhelper.TemplateSlot(payload.Get("slot").Str())

	if err := s.copyFn(context.Background(), recordID, slot); err != nil {
		s.logger.Warn("copy request failed", "record", recordID, "slot", string(slot), "err", err)
		return map[string]bool{"ok": false}, nil
	}
	return map[string]bool{"ok": true}, nil
}

// finish terminates the batch stream exactly once. The mutex excludes any
// in-flight onEmit send, so closing the channel here cannot race a send.
func (s *Source) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished || s.ch == nil {
		s.finished = true
		return
	}
	s.finished = true
	close(s.ch)
}
