package scan

// Tracker records which page elements have already been augmented, keyed by
// the node identity stamped by the mutation source. Marks are never cleared:
// an element that is replaced in the document arrives with a fresh node ID,
// so a rebuilt table is unprocessed by construction.
//
// Tracker is not safe for concurrent use; the Scanner serializes access to it
// on the batch-processing goroutine.
type Tracker struct {
	done map[string]struct{}
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{done: make(map[string]struct{})}
}

// Processed reports whether the node has already been augmented.
func (t *Tracker) Processed(nodeID string) bool {
	_, ok := t.done[nodeID]
	return ok
}

// Mark records a successful augmentation of the node. Callers must only mark
// after augmentation succeeds so failed nodes stay eligible for retry.
func (t *Tracker) Mark(nodeID string) {
	t.done[nodeID] = struct{}{}
}

// Len returns the number of marked nodes.
func (t *Tracker) Len() int {
	return len(t.done)
}
