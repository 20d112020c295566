// Package metrics holds Prometheus instruments shared across the backend.
// Collectors register with the global registry, so importing this package
// in cmd/web is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginSuccessTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admin_login_success_total",
			Help: "Cumulative number of successful admin logins.",
		})

	LoginFailureTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admin_login_failure_total",
			Help: "Cumulative number of rejected admin login attempts.",
		})

	GateDenialsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gate_denials_total",
			Help: "Cumulative number of requests denied by the admin gate.",
		})

	StoreReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_reads_total",
			Help: "Portfolio record reads by serving backend.",
		},
		[]string{"backend"}, // "remote" or "file"
	)

	StoreWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_writes_total",
			Help: "Portfolio record writes by serving backend.",
		},
		[]string{"backend"},
	)

	StoreFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "store_fallback_total",
			Help: "Times the remote backend was marked unavailable and the store downgraded to the local file.",
		})

	StoreSeedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "store_seed_total",
			Help: "Attempts to seed an empty remote backend from the local file.",
		})

	ContactMessagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Contact-form submissions accepted.",
		})

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limited_total",
			Help: "Requests rejected by the in-memory rate limiter.",
		})
)

func init() {
	prometheus.MustRegister(
		LoginSuccessTotal,
		LoginFailureTotal,
		GateDenialsTotal,
		StoreReadsTotal,
		StoreWritesTotal,
		StoreFallbackTotal,
		StoreSeedTotal,
		ContactMessagesTotal,
		RateLimitedTotal,
	)
}
