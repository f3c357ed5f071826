package cfhelper

import "regexp"

// zonePathRe matches the dashboard's DNS records page path:
// .../<32-hex-zone-id>/<zone-name>/dns/records
var zonePathRe = regexp.MustCompile(`/[0-9a-f]{32}/([^/]+)/dns/records(?:[/?#]|$)`)

// ZoneFromURL extracts the zone name from a dashboard page URL.
// Returns false if the URL does not match the DNS records page shape; callers
// must then treat every row on the page as non-extractable.
func ZoneFromURL(rawURL string) (string, bool) {
	m := zonePathRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
