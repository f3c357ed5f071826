package mock

import cfhelper "github.com/mikepilat/chrome-cloudflare-helper"

var _ cfhelper.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of cfhelper.Extractor.
type Extractor struct {
	DiscoverFn func(fragment string) (*cfhelper.FragmentNodes, error)
	ExtractFn  func(row cfhelper.RowCandidate, zone string) (cfhelper.Record, bool)
}

func (e *Extractor) Discover(fragment string) (*cfhelper.FragmentNodes, error) {
	return e.DiscoverFn(fragment)
}

func (e *Extractor) Extract(row cfhelper.RowCandidate, zone string) (cfhelper.Record, bool) {
	return e.ExtractFn(row, zone)
}
