package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// DefaultPollInterval is how often Watch re-reads the store when no interval
// is configured.
const DefaultPollInterval = 2 * time.Second

// Compile-time interface verification.
var _ cfhelper.TemplateStore = (*TemplateService)(nil)

// TemplateService implements cfhelper.TemplateStore using SQLite. Change
// notification is polled: the store may be written by another process (or
// another command of this tool), so Watch re-reads the table on an interval
// and emits a change whenever a value's fingerprint differs from the last
// observation.
type TemplateService struct {
	db *DB

	// PollInterval controls Watch's re-read cadence.
	// Defaults to DefaultPollInterval.
	PollInterval time.Duration
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *DB) *TemplateService {
	return &TemplateService{db: db}
}

// Get retrieves the stored values for the given slots. Slots without a stored
// value are omitted from the result.
func (s *TemplateService) Get(ctx context.Context, slots []cfhelper.TemplateSlot) (map[cfhelper.TemplateSlot]string, error) {
	if len(slots) == 0 {
		return map[cfhelper.TemplateSlot]string{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(slots)), ", ")
	args := make([]any, 0, len(slots))
	for _, slot := range slots {
		args = append(args, string(slot))
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value FROM templates WHERE key IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[cfhelper.TemplateSlot]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[cfhelper.TemplateSlot(key)] = value
	}
	return values, rows.Err()
}

// Set persists the given slot values.
func (s *TemplateService) Set(ctx context.Context, values map[cfhelper.TemplateSlot]string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for slot, value := range values {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO templates (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, string(slot), value, now)
		if err != nil {
			return err
		}
	}
	return nil
}

// Reset removes the stored values for the given slots.
func (s *TemplateService) Reset(ctx context.Context, slots []cfhelper.TemplateSlot) error {
	for _, slot := range slots {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE key = ?`, string(slot)); err != nil {
			return err
		}
	}
	return nil
}

// Watch emits a TemplateChange whenever a recognized slot's stored value
// changes, including reverts to the built-in defaults after a Reset. The
// returned channel is closed when ctx is canceled. Read errors during a poll
// are skipped; the next poll retries.
func (s *TemplateService) Watch(ctx context.Context) (<-chan cfhelper.TemplateChange, error) {
	interval := s.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	// Baseline fingerprints so only subsequent mutations notify.
	last, err := s.fingerprints(ctx)
	if err != nil {
		return nil, err
	}

	ch := make(chan cfhelper.TemplateChange)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			current, err := s.fingerprints(ctx)
			if err != nil {
				continue
			}

			for _, slot := range cfhelper.TemplateSlots {
				if current[slot].sum == last[slot].sum {
					continue
				}
				select {
				case ch <- cfhelper.TemplateChange{Slot: slot, Value: current[slot].value}:
				case <-ctx.Done():
					return
				}
			}
			last = current
		}
	}()

	return ch, nil
}

// fingerprint pairs a slot's effective value with its hash. A missing row
// hashes the built-in default, so deletions surface as changes too.
type fingerprint struct {
	value string
	sum   uint64
}

func (s *TemplateService) fingerprints(ctx context.Context) (map[cfhelper.TemplateSlot]fingerprint, error) {
	stored, err := s.Get(ctx, cfhelper.TemplateSlots)
	if err != nil {
		return nil, err
	}

	fps := make(map[cfhelper.TemplateSlot]fingerprint, len(cfhelper.TemplateSlots))
	for _, slot := range cfhelper.TemplateSlots {
		value, ok := stored[slot]
		if !ok {
			value = cfhelper.DefaultTemplate(slot)
		}
		fps[slot] = fingerprint{value: value, sum: xxhash.Sum64String(value)}
	}
	return fps, nil
}
