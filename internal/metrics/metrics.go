// Package metrics registers the prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DonationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hopebridge_donations_total",
		Help: "Donations applied to a need.",
	})

	DonatedItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hopebridge_donated_items_total",
		Help: "Items contributed across all donations.",
	})

	NeedsPostedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hopebridge_needs_posted_total",
		Help: "Needs posted by users.",
	})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hopebridge_notifications_total",
		Help: "User-facing notifications by severity.",
	}, []string{"severity"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hopebridge_http_requests_total",
		Help: "HTTP requests by method and status.",
	}, []string{"method", "status"})
)
