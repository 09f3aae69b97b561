// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route template, method and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoicer",
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by route, method and status code.",
	}, []string{"route", "method", "status"})

	// RequestDuration observes handler latency by route template and method.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "invoicer",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// InvoiceWrites counts invoice mutations by account and action.
	InvoiceWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoicer",
		Name:      "invoice_writes_total",
		Help:      "Invoice saves, deletions and payment updates, by account.",
	}, []string{"account", "action"})

	// ExchangeRateLive is 1 while the USD/EUR rate comes from the live feed
	// and 0 while the fallback is in use.
	ExchangeRateLive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "invoicer",
		Name:      "exchange_rate_live",
		Help:      "Whether the last USD/EUR rate served was live (1) or the fallback (0).",
	})
)

// Invoice write actions.
const (
	ActionSave    = "save"
	ActionDelete  = "delete"
	ActionPayment = "payment"
)

// RecordInvoiceWrite increments InvoiceWrites.
func RecordInvoiceWrite(account, action string) {
	InvoiceWrites.WithLabelValues(account, action).Inc()
}

// RecordExchangeRate updates ExchangeRateLive.
func RecordExchangeRate(live bool) {
	if live {
		ExchangeRateLive.Set(1)
		return
	}
	ExchangeRateLive.Set(0)
}
