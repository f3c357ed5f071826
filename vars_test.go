package cfhelper_test

import (
	"testing"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/stretchr/testify/assert"
)

func TestParseTTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		display string
		want    int
	}{
		{"Auto", 1},
		{"auto", 1},
		{" AUTO ", 1},
		{"5 min", 300},
		{"1 min", 60},
		{"2 hours", 7200},
		{"1 hour", 3600},
		{"1 day", 86400},
		{"30 sec", 30},
		{"45", 45},
		{"120s extra text", 120},
		{"garbage", 1},
		{"", 1},
		{"min 5", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.display, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cfhelper.ParseTTL(tt.display))
		})
	}
}

func TestResourceName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		recordName string
		recordType string
		want       string
	}{
		{"simple A record", "www.example.com", "A", "a_www_example_com"},
		{"wildcard collapses to single underscore", "*.example.com", "CNAME", "cname_example_com"},
		{"apex", "example.com", "MX", "mx_example_com"},
		{"underscore label survives", "_dmarc.example.com", "TXT", "txt_dmarc_example_com"},
		{"digits keep their place", "2025.example.com", "A", "a_2025_example_com"},
		{"empty name keeps type prefix", "", "A", "a_"},
		{"special characters become underscores", "foo bar!.example.com", "AAAA", "aaaa_foo_bar_example_com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cfhelper.ResourceName(tt.recordName, tt.recordType))
		})
	}
}

// The empty-name fallback is checked after the type prefix is applied, so a
// non-empty type always wins over the dns_record fallback. Pinned here so a
// future reordering is a conscious decision.
func TestResourceName_FallbackUnreachableWithType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a_", cfhelper.ResourceName("...", "A"))
	assert.Equal(t, "_", cfhelper.ResourceName("", ""))
}

func TestNewTemplateVars(t *testing.T) {
	t.Parallel()

	rec := cfhelper.Record{
		ID:         "0123456789abcdef0123456789abcdef",
		ZoneName:   "example.com",
		Type:       "A",
		Name:       "www.example.com",
		Content:    "192.0.2.1",
		TTLDisplay: "5 min",
		Proxied:    true,
	}

	vars := cfhelper.NewTemplateVars(rec)

	assert.Equal(t, rec.ID, vars.RecordID)
	assert.Equal(t, "example.com", vars.ZoneName)
	assert.Equal(t, "5 min", vars.TTL)
	assert.Equal(t, 300, vars.TTLSeconds)
	assert.True(t, vars.Proxied)
	assert.Equal(t, "a_www_example_com", vars.ResourceName)
}
