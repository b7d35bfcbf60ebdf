// Package metrics exposes storefront counters in Prometheus format.
// All recording methods are safe on a nil *Metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "baba"

type Metrics struct {
	registry *prometheus.Registry

	ordersCreated     prometheus.Counter
	checkoutRejected  *prometheus.CounterVec
	paymentsConfirmed prometheus.Counter
	trackingViews     *prometheus.CounterVec
	gateRedirects     *prometheus.CounterVec
	captchaFailures   prometheus.Counter
}

// New creates a private registry so tests can build as many as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Order records created from checkout.",
		}),
		checkoutRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_rejected_total",
			Help:      "Checkout submissions rejected by validation, by field.",
		}, []string{"field"}),
		paymentsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_confirmed_total",
			Help:      "Mock payments completed.",
		}),
		trackingViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_views_total",
			Help:      "Order-status views, by derived stage.",
		}, []string{"stage"}),
		gateRedirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gate_redirects_total",
			Help:      "Navigation gate redirects, by route and target.",
		}, []string{"route", "target"}),
		captchaFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captcha_failures_total",
			Help:      "Captcha mismatches on login and signup.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		m.ordersCreated,
		m.checkoutRejected,
		m.paymentsConfirmed,
		m.trackingViews,
		m.gateRedirects,
		m.captchaFailures,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

func (m *Metrics) CheckoutRejected(field string) {
	if m == nil {
		return
	}
	m.checkoutRejected.WithLabelValues(field).Inc()
}

func (m *Metrics) PaymentConfirmed() {
	if m == nil {
		return
	}
	m.paymentsConfirmed.Inc()
}

func (m *Metrics) TrackingViewed(stage string) {
	if m == nil {
		return
	}
	m.trackingViews.WithLabelValues(stage).Inc()
}

func (m *Metrics) GateRedirected(route, target string) {
	if m == nil {
		return
	}
	m.gateRedirects.WithLabelValues(route, target).Inc()
}

func (m *Metrics) CaptchaFailed() {
	if m == nil {
		return
	}
	m.captchaFailures.Inc()
}
