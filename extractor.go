package cfhelper

// RowCandidate is a table row discovered in an added fragment, prior to field
// extraction. NodeID is the stamped identity of the row element, empty when
// the markup was never stamped by a mutation source (e.g., a saved HTML file).
type RowCandidate struct {
	NodeID string
	HTML   string
}

// FragmentNodes is the structural result of discovering one HTML fragment.
type FragmentNodes struct {
	// HeadIDs lists the stamped node IDs of table header rows eligible for
	// the extra header cell.
	HeadIDs []string

	// Rows lists every element carrying the row marker, extractable or not.
	Rows []RowCandidate
}

// Extractor locates dashboard table structure in markup and parses DNS
// records out of individual rows. Discovery and extraction are separate
// operations so that an already-processed row is never re-extracted.
type Extractor interface {
	// Discover parses an HTML fragment and reports the header rows and row
	// candidates found in it, without extracting fields.
	Discover(fragment string) (*FragmentNodes, error)

	// Extract parses one row candidate into a Record. The zone name is
	// embedded in the record. Returns false when the row is not
	// extractable: malformed identifier, too few cells, or empty zone.
	// Extraction never fails loudly; a false return means "skip this row
	// this scan, retry on the next mutation".
	Extract(row RowCandidate, zone string) (Record, bool)
}
