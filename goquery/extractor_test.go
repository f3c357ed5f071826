package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/mikepilat/chrome-cloudflare-helper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements cfhelper.Extractor at compile time.
var _ cfhelper.Extractor = (*goquery.Extractor)(nil)

const testRecordID = "0123456789abcdef0123456789abcdef"

// richRow builds a full seven-cell dashboard row.
func richRow(editTestID string) string {
	return fmt.Sprintf(`<tr data-testid="dns-table-row" data-cfh-node="row-1">
		<td><input type="checkbox"></td>
		<td></td>
		<td><span title="A">A</span></td>
		<td><span title="www.example.com">www.example…</span></td>
		<td><span title="192.0.2.1">192.0.2.1</span></td>
		<td><img src="https://dash.cloudflare.com/assets/cloud-f38020.svg"></td>
		<td> 5 min </td>
		<td><button data-testid="%s">Edit</button></td>
	</tr>`, editTestID)
}

// discoverOne is a helper that discovers a fragment expected to hold exactly
// one row candidate.
func discoverOne(t *testing.T, e *goquery.Extractor, fragment string) cfhelper.RowCandidate {
	t.Helper()
	nodes, err := e.Discover(fragment)
	require.NoError(t, err)
	require.Len(t, nodes.Rows, 1)
	return nodes.Rows[0]
}

func TestExtractor_Discover(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("finds a bare row fragment", func(t *testing.T) {
		t.Parallel()

		row := discoverOne(t, e, richRow(testRecordID+"-dns-edit-row"))

		assert.Equal(t, "row-1", row.NodeID)
		assert.Contains(t, row.HTML, "dns-table-row")
	})

	t.Run("finds rows nested in a larger fragment", func(t *testing.T) {
		t.Parallel()

		html := `<div><table><tbody>` + richRow(testRecordID+"-dns-edit-row") + `</tbody></table></div>`

		row := discoverOne(t, e, html)

		assert.Equal(t, "row-1", row.NodeID)
	})

	t.Run("reports eligible stamped headers", func(t *testing.T) {
		t.Parallel()

		html := `<table>
			<thead data-cfh-node="head-1"><tr><th data-testid="dns-table-header-name">Name</th></tr></thead>
			<tbody></tbody>
		</table>`

		nodes, err := e.Discover(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"head-1"}, nodes.HeadIDs)
	})

	t.Run("header without the name cell is not eligible", func(t *testing.T) {
		t.Parallel()

		nodes, err := e.Discover(`<table><thead data-cfh-node="head-2"><tr><th>Other</th></tr></thead></table>`)
		require.NoError(t, err)
		assert.Empty(t, nodes.HeadIDs)
	})

	t.Run("unstamped header is skipped", func(t *testing.T) {
		t.Parallel()

		nodes, err := e.Discover(`<table><thead><tr><th data-testid="dns-table-header-name">Name</th></tr></thead></table>`)
		require.NoError(t, err)
		assert.Empty(t, nodes.HeadIDs)
	})

	t.Run("unstamped row is reported with empty node ID", func(t *testing.T) {
		t.Parallel()

		html := strings.Replace(richRow(testRecordID+"-dns-edit-row"), ` data-cfh-node="row-1"`, "", 1)

		row := discoverOne(t, e, html)

		assert.Empty(t, row.NodeID)
	})

	t.Run("unrelated markup yields nothing", func(t *testing.T) {
		t.Parallel()

		nodes, err := e.Discover(`<div><p>nothing tabular here</p></div>`)
		require.NoError(t, err)
		assert.Empty(t, nodes.HeadIDs)
		assert.Empty(t, nodes.Rows)
	})
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("rich row extracts all fields", func(t *testing.T) {
		t.Parallel()

		row := discoverOne(t, e, richRow(testRecordID+"-dns-edit-row"))

		rec, ok := e.Extract(row, "example.com")
		require.True(t, ok)
		assert.Equal(t, testRecordID, rec.ID)
		assert.Equal(t, "example.com", rec.ZoneName)
		assert.Equal(t, "A", rec.Type)
		assert.Equal(t, "www.example.com", rec.Name)
		assert.Equal(t, "192.0.2.1", rec.Content)
		assert.True(t, rec.Proxied)
		assert.Equal(t, "5 min", rec.TTLDisplay)
	})

	t.Run("minimal five-cell row extracts with shifted layout", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<tr data-testid="dns-table-row">
			<td><span title="TXT">TXT</span></td>
			<td><span title="_dmarc.example.com">_dmarc</span></td>
			<td><span title="v=DMARC1; p=none">v=DMARC1…</span></td>
			<td><img src="/assets/cloud-92979b.svg"></td>
			<td>1 hour</td>
			<td><button data-testid="%s-dns-edit-row">Edit</button></td>
		</tr>`, testRecordID)

		rec, ok := e.Extract(discoverOne(t, e, html), "example.com")
		require.True(t, ok)
		assert.Equal(t, "TXT", rec.Type)
		assert.Equal(t, "_dmarc.example.com", rec.Name)
		assert.Equal(t, "v=DMARC1; p=none", rec.Content)
		assert.False(t, rec.Proxied)
		assert.Equal(t, "1 hour", rec.TTLDisplay)
	})

	t.Run("too few cells is not extractable", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<tr data-testid="dns-table-row">
			<td>A</td><td>www</td>
			<td><button data-testid="%s-dns-edit-row">Edit</button></td>
		</tr>`, testRecordID)

		_, ok := e.Extract(discoverOne(t, e, html), "example.com")
		assert.False(t, ok)
	})

	t.Run("malformed edit control identifier is not extractable", func(t *testing.T) {
		t.Parallel()

		for _, testid := range []string{
			"0123456789abcdef0123456789abcde-dns-edit-row",    // 31 hex chars
			"0123456789abcdef0123456789abcdef0-dns-edit-row",  // 33 hex chars
			"0123456789ABCDEF0123456789ABCDEF-dns-edit-row",   // uppercase
			"0123456789abcdef0123456789abcdef-dns-delete-row", // wrong suffix
			"dns-edit-row",
		} {
			row := cfhelper.RowCandidate{HTML: richRow(testid)}

			_, ok := e.Extract(row, "example.com")
			assert.False(t, ok, "testid %q must not extract", testid)
		}
	})

	t.Run("valid identifier is returned unchanged", func(t *testing.T) {
		t.Parallel()

		id := "abcdefabcdefabcdefabcdefabcdefab"

		rec, ok := e.Extract(cfhelper.RowCandidate{HTML: richRow(id + "-dns-edit-row")}, "example.com")
		require.True(t, ok)
		assert.Equal(t, id, rec.ID)
	})

	t.Run("empty zone is not extractable", func(t *testing.T) {
		t.Parallel()

		_, ok := e.Extract(cfhelper.RowCandidate{HTML: richRow(testRecordID + "-dns-edit-row")}, "")
		assert.False(t, ok)
	})

	t.Run("missing nested elements degrade to empty fields", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<tr data-testid="dns-table-row">
			<td></td><td></td><td></td><td></td><td></td><td></td><td></td>
			<td><button data-testid="%s-dns-edit-row">Edit</button></td>
		</tr>`, testRecordID)

		rec, ok := e.Extract(cfhelper.RowCandidate{HTML: html}, "example.com")
		require.True(t, ok)
		assert.Empty(t, rec.Type)
		assert.Empty(t, rec.Name)
		assert.Empty(t, rec.Content)
		assert.False(t, rec.Proxied)
		assert.Equal(t, "Auto", rec.TTLDisplay)
	})
}

func TestExtractor_Extract_ProxyFingerprint(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	tests := []struct {
		name    string
		imgCell string
		want    bool
	}{
		{"orange cloud enabled", `<td><img src="/cloud-F38020.png"></td>`, true},
		{"grey cloud disabled", `<td><img src="/cloud-92979b.png"></td>`, false},
		{"no image disabled", `<td></td>`, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := fmt.Sprintf(`<tr data-testid="dns-table-row">
				<td></td><td></td>
				<td><span title="A">A</span></td>
				<td>www</td><td>192.0.2.1</td>
				%s
				<td>Auto</td>
				<td><button data-testid="%s-dns-edit-row">Edit</button></td>
			</tr>`, tt.imgCell, testRecordID)

			rec, ok := e.Extract(cfhelper.RowCandidate{HTML: html}, "example.com")
			require.True(t, ok)
			assert.Equal(t, tt.want, rec.Proxied)
		})
	}
}
