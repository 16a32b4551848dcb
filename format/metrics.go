// Package format provides uniform reading and writing of configuration
// files across multiple serialization formats.
package format

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// formatMetrics contains Prometheus metrics for manager operations.
type formatMetrics struct {
	readTotal  *prometheus.CounterVec
	writeTotal *prometheus.CounterVec
	parseTotal *prometheus.CounterVec
}

var (
	formatMetricsInstance *formatMetrics
	formatMetricsOnce     sync.Once
)

// getFormatMetrics returns the singleton format metrics instance.
func getFormatMetrics() *formatMetrics {
	formatMetricsOnce.Do(func() {
		formatMetricsInstance = &formatMetrics{
			readTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "avaconf",
					Subsystem: "format",
					Name:      "read_total",
					Help:      "Total number of configuration file reads",
				},
				[]string{"format", "result"},
			),
			writeTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "avaconf",
					Subsystem: "format",
					Name:      "write_total",
					Help:      "Total number of configuration file writes",
				},
				[]string{"format", "result"},
			),
			parseTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "avaconf",
					Subsystem: "format",
					Name:      "parse_total",
					Help:      "Total number of in-memory content parses",
				},
				[]string{"format", "result"},
			),
		}
	})
	return formatMetricsInstance
}

// resultLabel converts an operation outcome to a metric label.
func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// observeRead records a file read outcome.
func observeRead(f ContentFormat, err error) {
	getFormatMetrics().readTotal.WithLabelValues(f.String(), resultLabel(err)).Inc()
}

// observeWrite records a file write outcome.
func observeWrite(f ContentFormat, err error) {
	getFormatMetrics().writeTotal.WithLabelValues(f.String(), resultLabel(err)).Inc()
}

// observeParse records an in-memory parse outcome.
func observeParse(f ContentFormat, err error) {
	getFormatMetrics().parseTotal.WithLabelValues(f.String(), resultLabel(err)).Inc()
}
