package cfhelper

import "regexp"

// recordIDPattern is the shape of a Cloudflare DNS record identifier as it
// appears in the dashboard markup: exactly 32 lowercase hex characters.
var recordIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

// Record represents one DNS record extracted from a dashboard table row.
// Records are ephemeral: they are rebuilt on every scan and never persisted.
type Record struct {
	// ID is the record identifier, exactly 32 lowercase hex characters.
	ID string

	// ZoneName is derived once per page from the page URL and is the same
	// for every record on a page.
	ZoneName string

	// Type, Name and Content are free-form strings; each is empty when the
	// expected nested element is absent from the row markup.
	Type    string
	Name    string
	Content string

	// TTLDisplay is the TTL exactly as shown in the UI ("Auto", "5 min",
	// "2 hours", ...). Defaults to "Auto" when unresolvable.
	TTLDisplay string

	// Proxied reports whether the row shows the proxy-enabled indicator.
	Proxied bool
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if !recordIDPattern.MatchString(r.ID) {
		return Errorf(EINVALID, "record ID must be 32 lowercase hex characters")
	}
	if r.ZoneName == "" {
		return Errorf(EINVALID, "record zone name required")
	}
	return nil
}

// ValidRecordID reports whether s has the exact shape of a record identifier.
func ValidRecordID(s string) bool {
	return recordIDPattern.MatchString(s)
}
