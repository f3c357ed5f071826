package cfhelper_test

import (
	"testing"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/stretchr/testify/assert"
)

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	valid := cfhelper.Record{
		ID:       "0123456789abcdef0123456789abcdef",
		ZoneName: "example.com",
	}

	t.Run("valid record passes", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, valid.Validate())
	})

	t.Run("uppercase hex rejected", func(t *testing.T) {
		t.Parallel()

		rec := valid
		rec.ID = "0123456789ABCDEF0123456789ABCDEF"

		assert.Equal(t, cfhelper.EINVALID, cfhelper.ErrorCode(rec.Validate()))
	})

	t.Run("short ID rejected", func(t *testing.T) {
		t.Parallel()

		rec := valid
		rec.ID = "abc123"

		assert.Equal(t, cfhelper.EINVALID, cfhelper.ErrorCode(rec.Validate()))
	})

	t.Run("missing zone rejected", func(t *testing.T) {
		t.Parallel()

		rec := valid
		rec.ZoneName = ""

		assert.Equal(t, cfhelper.EINVALID, cfhelper.ErrorCode(rec.Validate()))
	})
}

func TestValidRecordID(t *testing.T) {
	t.Parallel()

	assert.True(t, cfhelper.ValidRecordID("0123456789abcdef0123456789abcdef"))
	assert.False(t, cfhelper.ValidRecordID("0123456789abcdef0123456789abcde"))
	assert.False(t, cfhelper.ValidRecordID("0123456789abcdef0123456789abcdef0"))
	assert.False(t, cfhelper.ValidRecordID("g123456789abcdef0123456789abcdef"))
}

func TestZoneFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		zone string
		ok   bool
	}{
		{
			name: "records page",
			url:  "https://dash.cloudflare.com/0123456789abcdef0123456789abcdef/example.com/dns/records",
			zone: "example.com",
			ok:   true,
		},
		{
			name: "trailing query",
			url:  "https://dash.cloudflare.com/0123456789abcdef0123456789abcdef/example.com/dns/records?page=2",
			zone: "example.com",
			ok:   true,
		},
		{
			name: "different dashboard page",
			url:  "https://dash.cloudflare.com/0123456789abcdef0123456789abcdef/example.com/dns/settings",
			ok:   false,
		},
		{
			name: "account ID not hex",
			url:  "https://dash.cloudflare.com/not-an-id/example.com/dns/records",
			ok:   false,
		},
		{
			name: "empty",
			url:  "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			zone, ok := cfhelper.ZoneFromURL(tt.url)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.zone, zone)
		})
	}
}
