package cfhelper

import (
	"context"
	"strconv"
	"strings"
)

// TemplateSlot identifies one of the two persisted template slots. The slot
// values double as the storage keys recognized by the configuration store.
type TemplateSlot string

// Recognized template slots.
const (
	TemplateResource TemplateSlot = "resourceTemplate"
	TemplateImport   TemplateSlot = "importTemplate"
)

// TemplateSlots lists every recognized slot.
var TemplateSlots = []TemplateSlot{TemplateResource, TemplateImport}

// Default template texts, used whenever a stored value is absent. The literal
// ZONE_ID is deliberately not a placeholder: the zone ID is not visible in the
// table markup, so the user substitutes it once in their editor.
const (
	DefaultResourceTemplate = `resource "cloudflare_record" "{{resourceName}}" {
  zone_id = ZONE_ID
  name    = "{{name}}"
  type    = "{{type}}"
  content = "{{content}}"
  ttl     = {{ttlSeconds}}
  proxied = {{proxied}}
}`

	DefaultImportTemplate = `import {
  to = cloudflare_record.{{resourceName}}
  id = "ZONE_ID/{{recordId}}"
}`
)

// DefaultTemplate returns the built-in text for a slot, or "" for an
// unrecognized slot.
func DefaultTemplate(slot TemplateSlot) string {
	switch slot {
	case TemplateResource:
		return DefaultResourceTemplate
	case TemplateImport:
		return DefaultImportTemplate
	}
	return ""
}

// Render substitutes the nine recognized placeholder tokens in tpl with values
// from vars. Substitution is global, non-overlapping, and single-pass:
// replacement text is never re-scanned for further placeholders, so a field
// value containing "{{name}}" survives verbatim in the output. Unrecognized
// placeholder syntax is left untouched. Values are not escaped; the output is
// plain text destined for a buffer the user controls.
func Render(tpl string, vars TemplateVars) string {
	r := strings.NewReplacer(
		"{{recordId}}", vars.RecordID,
		"{{zoneName}}", vars.ZoneName,
		"{{type}}", vars.Type,
		"{{name}}", vars.Name,
		"{{content}}", vars.Content,
		"{{ttl}}", vars.TTL,
		"{{ttlSeconds}}", strconv.Itoa(vars.TTLSeconds),
		"{{proxied}}", strconv.FormatBool(vars.Proxied),
		"{{resourceName}}", vars.ResourceName,
	)
	return r.Replace(tpl)
}

// TemplateChange describes one observed mutation of a stored template.
type TemplateChange struct {
	Slot  TemplateSlot
	Value string
}

// TemplateStore loads and persists the named template slots.
type TemplateStore interface {
	// Get retrieves the stored values for the given slots. Slots without a
	// stored value are omitted from the result; callers substitute the
	// built-in defaults.
	Get(ctx context.Context, slots []TemplateSlot) (map[TemplateSlot]string, error)

	// Set persists the given slot values.
	Set(ctx context.Context, values map[TemplateSlot]string) error

	// Reset removes the stored values for the given slots, reverting them
	// to the built-in defaults.
	Reset(ctx context.Context, slots []TemplateSlot) error

	// Watch returns a stream of template changes caused by external
	// mutations of the store. The channel is closed when ctx is canceled.
	Watch(ctx context.Context) (<-chan TemplateChange, error)
}
