// Package goquery implements DNS record discovery and extraction from
// dashboard table markup.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// Host page coupling. The dashboard's markup was not designed for machine
// consumption; everything we depend on — selectors, attribute conventions and
// cell positions — is collected here so a host layout change touches one
// definition, not every call site.
const (
	// rowSelector matches DNS record body rows.
	rowSelector = `tr[data-testid="dns-table-row"]`

	// headSelector matches table header containers; a header is eligible
	// for augmentation only when it contains the name header cell.
	headSelector     = "thead"
	nameHeadSelector = `[data-testid="dns-table-header-name"]`

	// editControlSelector matches the row's edit control, whose test ID
	// encodes the record identifier.
	editControlSelector = `[data-testid$="-dns-edit-row"]`

	// proxiedColorFragment is the hex color of the proxy-enabled cloud
	// icon as it appears in the icon's image source. A brittle
	// fingerprint; keep it behind isProxiedIcon so it can be replaced
	// without touching callers.
	proxiedColorFragment = "f38020"
)

// editControlRe accepts only the exact composite shape the dashboard uses:
// 32 lowercase hex characters followed by the literal edit-row suffix.
var editControlRe = regexp.MustCompile(`^([0-9a-f]{32})-dns-edit-row$`)

// cellLayout maps fixed cell positions to record fields. Positional, not
// semantic: the host page carries no per-field attributes, so this is a
// structural contract that must track the host's column order.
type cellLayout struct {
	minCells   int
	typeIdx    int
	nameIdx    int
	contentIdx int
	proxyIdx   int
	ttlIdx     int
}

var (
	// richLayout is the full table: checkbox, warnings, type, name,
	// content, proxy, ttl, ...
	richLayout = cellLayout{minCells: 7, typeIdx: 2, nameIdx: 3, contentIdx: 4, proxyIdx: 5, ttlIdx: 6}

	// minimalLayout is the reduced table without the leading checkbox and
	// warnings columns.
	minimalLayout = cellLayout{minCells: 5, typeIdx: 0, nameIdx: 1, contentIdx: 2, proxyIdx: 3, ttlIdx: 4}
)

// Ensure Extractor implements cfhelper.Extractor at compile time.
var _ cfhelper.Extractor = (*Extractor)(nil)

// Extractor parses DNS records out of dashboard HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Discover parses an HTML fragment and reports eligible header rows and row
// candidates, without extracting any fields.
func (e *Extractor) Discover(fragment string) (*cfhelper.FragmentNodes, error) {
	doc, err := parseFragment(fragment)
	if err != nil {
		return nil, cfhelper.Errorf(cfhelper.EINVALID, "failed to parse HTML fragment: %v", err)
	}

	nodes := &cfhelper.FragmentNodes{}

	doc.Find(headSelector).Each(func(_ int, head *goquery.Selection) {
		if head.Find(nameHeadSelector).Length() == 0 {
			return
		}
		if id, ok := head.Attr(cfhelper.NodeIDAttr); ok {
			nodes.HeadIDs = append(nodes.HeadIDs, id)
		}
	})

	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		html, err := goquery.OuterHtml(row)
		if err != nil {
			return
		}
		nodes.Rows = append(nodes.Rows, cfhelper.RowCandidate{
			NodeID: row.AttrOr(cfhelper.NodeIDAttr, ""),
			HTML:   html,
		})
	})

	return nodes, nil
}

// Extract reads one row candidate into a Record. Returns false when the row
// is not extractable: empty zone, missing or malformed edit control, or too
// few cells. Any positional mismatch degrades to "field absent" rather than
// failure.
func (e *Extractor) Extract(candidate cfhelper.RowCandidate, zone string) (cfhelper.Record, bool) {
	if zone == "" {
		return cfhelper.Record{}, false
	}

	doc, err := parseFragment(candidate.HTML)
	if err != nil {
		return cfhelper.Record{}, false
	}
	row := doc.Find("tr").First()
	if row.Length() == 0 {
		return cfhelper.Record{}, false
	}

	id, ok := recordID(row)
	if !ok {
		return cfhelper.Record{}, false
	}

	cells := row.ChildrenFiltered("td")
	layout := richLayout
	if cells.Length() < richLayout.minCells {
		layout = minimalLayout
	}
	if cells.Length() < layout.minCells {
		return cfhelper.Record{}, false
	}

	rec := cfhelper.Record{
		ID:       id,
		ZoneName: zone,
		Type:     titleAttr(cells.Eq(layout.typeIdx)),
		Name:     titleOrText(cells.Eq(layout.nameIdx)),
		Content:  titleOrText(cells.Eq(layout.contentIdx)),
		Proxied:  proxied(cells.Eq(layout.proxyIdx)),
	}

	rec.TTLDisplay = strings.TrimSpace(cells.Eq(layout.ttlIdx).Text())
	if rec.TTLDisplay == "" {
		rec.TTLDisplay = "Auto"
	}

	return rec, true
}

// recordID extracts the record identifier from the row's edit control.
// Only the exact <32-hex>-dns-edit-row shape is accepted.
func recordID(row *goquery.Selection) (string, bool) {
	control := row.Find(editControlSelector).First()
	if control.Length() == 0 {
		return "", false
	}
	m := editControlRe.FindStringSubmatch(control.AttrOr("data-testid", ""))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// titleAttr returns the title of the first nested element carrying one,
// or "" when absent.
func titleAttr(cell *goquery.Selection) string {
	return cell.Find("[title]").First().AttrOr("title", "")
}

// titleOrText prefers a nested title attribute over the cell's visible text.
// The text fallback is returned as-is; the host does its own trimming.
func titleOrText(cell *goquery.Selection) string {
	if v := titleAttr(cell); v != "" {
		return v
	}
	return cell.Text()
}

// proxied reports whether the proxy cell shows the enabled indicator.
func proxied(cell *goquery.Selection) bool {
	src, ok := cell.Find("img").First().Attr("src")
	if !ok {
		return false
	}
	return isProxiedIcon(src)
}

// isProxiedIcon reports whether an image source carries the proxy-enabled
// color fingerprint. Heuristic: the dashboard does not expose proxy status as
// data, only as the orange cloud icon.
func isProxiedIcon(src string) bool {
	return strings.Contains(strings.ToLower(src), proxiedColorFragment)
}

// parseFragment parses fragment into a document. Fragments whose root is a
// table-section element ("<tr>", "<thead>", "<tbody>") cannot survive HTML5
// tree construction outside a table, so they are rewrapped first.
func parseFragment(fragment string) (*goquery.Document, error) {
	trimmed := strings.ToLower(strings.TrimSpace(fragment))
	for _, prefix := range []string{"<tr", "<thead", "<tbody"} {
		if strings.HasPrefix(trimmed, prefix) {
			fragment = "<table>" + fragment + "</table>"
			break
		}
	}
	return goquery.NewDocumentFromReader(strings.NewReader(fragment))
}
