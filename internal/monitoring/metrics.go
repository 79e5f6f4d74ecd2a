package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rentflow_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rentflow_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	ReconciliationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rentflow_reconciliation_duration_seconds",
			Help:    "Duration of ledger reconciliation reads in seconds",
			Buckets: prometheus.LinearBuckets(0, 0.05, 10),
		},
	)
	ExpiredActiveLeases = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rentflow_expired_active_leases",
			Help: "Leases still marked ACTIVE past their end date at last check",
		},
	)
)

func InitMetrics() {
	for _, c := range []prometheus.Collector{
		HTTPRequests, HTTPDuration, ReconciliationDuration, ExpiredActiveLeases,
	} {
		if err := prometheus.Register(c); err != nil {
			log.Error().Err(err).Msg("Failed to register metric")
		}
	}
}
