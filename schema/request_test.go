package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusTerminal(t *testing.T) {
	assert.False(t, RequestStatusPending.Terminal())
	assert.True(t, RequestStatusCancelled.Terminal())
	assert.True(t, RequestStatusAccepted.Terminal())
}
