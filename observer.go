package cfhelper

import "context"

// NodeIDAttr is the attribute a MutationSource stamps on interesting elements
// so that later augmentation can target the exact live node. The attribute is
// destroyed with its element, which is what makes the idempotency markers
// element-scoped: a replaced table arrives with fresh node IDs.
const NodeIDAttr = "data-cfh-node"

// AddedElement is one element subtree reported as added to the document.
type AddedElement struct {
	// NodeID is the stamped identity of the subtree root, empty if the
	// source could not stamp it.
	NodeID string

	// HTML is the serialized subtree, including stamped node IDs.
	HTML string
}

// ElementBatch is the atomic unit emitted by a MutationSource: all element
// additions observed in one mutation flush. A batch must be fully drained
// before the next one is considered.
type ElementBatch struct {
	// ID uniquely identifies the batch.
	ID string

	// Seq increases monotonically per page. Seq 0 is the initial
	// full-document batch emitted before incremental observation begins.
	Seq uint64

	// PageURL is the document location at the time of the flush.
	PageURL string

	// Added holds the reported element subtrees.
	Added []AddedElement
}

// MutationSource exposes a live, mutating document as a stream of
// added-element batches. Implementations emit one initial batch covering the
// full document, then one batch per observed mutation flush.
type MutationSource interface {
	// Batches starts observation and returns the batch stream.
	// The channel is closed when ctx is canceled or the page goes away.
	Batches(ctx context.Context) (<-chan ElementBatch, error)

	// Close releases observation resources.
	Close() error
}

// PageAugmenter mutates the live document with the user-visible surface.
// Both operations are targeted by stamped node ID and must fail (not throw)
// when the node no longer exists.
type PageAugmenter interface {
	// InsertHeaderCell appends a header cell with the given label to the
	// header row identified by headID.
	InsertHeaderCell(ctx context.Context, headID string, label string) error

	// InsertRecordCell appends a cell to the row identified by rowID,
	// showing the record identifier plus the copy controls.
	InsertRecordCell(ctx context.Context, rowID string, recordID string) error
}

// Clipboard writes text to a clipboard. Implementations may target the host
// page's clipboard or the operating system's.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
