//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const idempotentReplayedHeader = "Idempotent-Replayed"

// AssertReplayed checks whether a booking response was served from a stored idempotency key.
func AssertReplayed(t *testing.T, w *httptest.ResponseRecorder, replayed bool) {
	t.Helper()
	if replayed {
		assert.Equal(t, "true", w.Header().Get(idempotentReplayedHeader))
		return
	}
	assert.Empty(t, w.Header().Get(idempotentReplayedHeader))
}
