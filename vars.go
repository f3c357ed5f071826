package cfhelper

import (
	"regexp"
	"strconv"
	"strings"
)

// TemplateVars is the variable set exposed to templates, derived 1:1 from a
// Record plus two computed fields (ResourceName, TTLSeconds).
type TemplateVars struct {
	RecordID     string
	ZoneName     string
	Type         string
	Name         string
	Content      string
	TTL          string
	TTLSeconds   int
	Proxied      bool
	ResourceName string
}

// NewTemplateVars derives the template variable set from a record.
func NewTemplateVars(rec Record) TemplateVars {
	return TemplateVars{
		RecordID:     rec.ID,
		ZoneName:     rec.ZoneName,
		Type:         rec.Type,
		Name:         rec.Name,
		Content:      rec.Content,
		TTL:          rec.TTLDisplay,
		TTLSeconds:   ParseTTL(rec.TTLDisplay),
		Proxied:      rec.Proxied,
		ResourceName: ResourceName(rec.Name, rec.Type),
	}
}

var (
	nonIdentRe  = regexp.MustCompile(`[^A-Za-z0-9_]`)
	underscores = regexp.MustCompile(`_+`)
)

// ResourceName derives a slug-safe identifier from a record name and type,
// suitable for use as a Terraform resource name. The record name is slugged
// (periods and other non-identifier characters become underscores, runs
// collapse, edges trim) and prefixed with the lower-cased type.
//
// The empty-slug fallback is checked after the type prefix is applied, which
// makes it unreachable whenever the type is non-empty. This mirrors the
// behavior users already rely on; see DESIGN.md before changing the order.
func ResourceName(name, recordType string) string {
	slug := strings.ReplaceAll(name, ".", "_")
	slug = nonIdentRe.ReplaceAllString(slug, "_")
	slug = underscores.ReplaceAllString(slug, "_")
	slug = strings.Trim(slug, "_")

	out := strings.ToLower(recordType) + "_" + slug
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "r_" + out
	}
	if out == "" {
		return "dns_record"
	}
	return out
}

// ttlRe matches a leading integer with an optional unit word. Plural unit
// forms ("hours") match because the expression is not anchored at the end.
var ttlRe = regexp.MustCompile(`(?i)^\s*(\d+)\s*(min|hour|day|sec)?`)

// ParseTTL converts a TTL display string into seconds.
// "Auto" (case-insensitive) and anything without a leading integer map to 1.
// A bare integer is taken as seconds. No upper bound is enforced.
func ParseTTL(display string) int {
	if strings.EqualFold(strings.TrimSpace(display), "auto") {
		return 1
	}

	m := ttlRe.FindStringSubmatch(display)
	if m == nil {
		return 1
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}

	switch strings.ToLower(m[2]) {
	case "min":
		return n * 60
	case "hour":
		return n * 3600
	case "day":
		return n * 86400
	default:
		return n
	}
}
