// Package mock provides function-field mock implementations of the cfhelper
// domain interfaces for use in tests.
package mock

import (
	"context"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

var _ cfhelper.MutationSource = (*MutationSource)(nil)

// MutationSource is a mock implementation of cfhelper.MutationSource.
type MutationSource struct {
	BatchesFn func(ctx context.Context) (<-chan cfhelper.ElementBatch, error)
	CloseFn   func() error
}

func (s *MutationSource) Batches(ctx context.Context) (<-chan cfhelper.ElementBatch, error) {
	return s.BatchesFn(ctx)
}

func (s *MutationSource) Close() error {
	return s.CloseFn()
}
