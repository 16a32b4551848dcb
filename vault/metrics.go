// Package vault loads named secret blobs from a single JSON file and
// lazily decodes a chosen one into a typed value.
package vault

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for alias resolution.
var aliasResolveTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "avaconf",
		Subsystem: "vault",
		Name:      "alias_resolve_total",
		Help:      "Total number of vault alias resolutions",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(aliasResolveTotal)
}

// observeResolve records an alias resolution outcome.
func observeResolve(result string) {
	aliasResolveTotal.WithLabelValues(result).Inc()
}
