// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequests counts handled requests by method, path and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Handled HTTP requests.",
}, []string{"method", "path", "status"})

// OrdersSubmitted counts successfully created orders.
var OrdersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "orders_submitted_total",
	Help: "Successfully created orders.",
})
