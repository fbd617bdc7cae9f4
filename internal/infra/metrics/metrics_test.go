//go:build unit

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	t.Run("予約作成カウンタ", func(t *testing.T) {
		before := testutil.ToFloat64(bookingsCreated)
		IncBookingCreated()
		assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated))
	})

	t.Run("決済確認はresultラベルで分かれる", func(t *testing.T) {
		ok := testutil.ToFloat64(paymentConfirmations.WithLabelValues("verified"))
		ng := testutil.ToFloat64(paymentConfirmations.WithLabelValues("rejected"))

		IncPaymentConfirmation("verified")

		assert.Equal(t, ok+1, testutil.ToFloat64(paymentConfirmations.WithLabelValues("verified")))
		assert.Equal(t, ng, testutil.ToFloat64(paymentConfirmations.WithLabelValues("rejected")))
	})

	t.Run("HTTPリクエスト", func(t *testing.T) {
		before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/spots/:id", "200"))
		ObserveHTTPRequest("GET", "/api/spots/:id", "200", 15*time.Millisecond)
		assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/spots/:id", "200")))
	})
}
