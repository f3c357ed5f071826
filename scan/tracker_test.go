package scan_test

import (
	"testing"

	"github.com/mikepilat/chrome-cloudflare-helper/scan"
	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	t.Parallel()

	t.Run("unmarked nodes are unprocessed", func(t *testing.T) {
		t.Parallel()

		tr := scan.NewTracker()

		assert.False(t, tr.Processed("row-1"))
		assert.Zero(t, tr.Len())
	})

	t.Run("marking is per node and permanent", func(t *testing.T) {
		t.Parallel()

		tr := scan.NewTracker()
		tr.Mark("row-1")

		assert.True(t, tr.Processed("row-1"))
		assert.False(t, tr.Processed("row-2"))

		tr.Mark("row-1")
		assert.Equal(t, 1, tr.Len())
	})

	t.Run("fresh node IDs from a replaced table are unprocessed", func(t *testing.T) {
		t.Parallel()

		tr := scan.NewTracker()
		tr.Mark("head-1")

		// A table replacement produces new nodes with new IDs; the old
		// marks do not apply to them.
		assert.False(t, tr.Processed("head-2"))
	})
}
