package cfhelper_test

import (
	"testing"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cfhelper.Errorf(cfhelper.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, cfhelper.ENOTFOUND, cfhelper.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", cfhelper.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cfhelper.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cfhelper.ErrorMessage(nil))
}
