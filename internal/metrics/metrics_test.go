package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.OrderCreated()
	m.OrderCreated()
	m.PaymentConfirmed()
	m.TrackingViewed("Shipped")
	m.GateRedirected("/checkout", "/login")
	m.CheckoutRejected("pincode")
	m.CaptchaFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsConfirmed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.trackingViews.WithLabelValues("Shipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gateRedirects.WithLabelValues("/checkout", "/login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkoutRejected.WithLabelValues("pincode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.captchaFailures))
}

func TestNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.OrderCreated()
		m.PaymentConfirmed()
		m.TrackingViewed("Confirmed")
		m.GateRedirected("/payment", "/cart")
		m.CheckoutRejected("cart")
		m.CaptchaFailed()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.OrderCreated()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "baba_orders_created_total 1")
}
