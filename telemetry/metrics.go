// Package telemetry exports sensor readings: Prometheus metrics for scraping
// and an optional InfluxDB sink for time-series history.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	headingGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "viewcompass",
		Subsystem: "heading",
		Name:      "degrees",
		Help:      "Most recent magnetic heading in degrees.",
	})
	headingUpdates = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "viewcompass",
		Subsystem: "heading",
		Name:      "updates_total",
		Help:      "Number of heading updates delivered by the heading service.",
	})
	stepGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "viewcompass",
		Subsystem: "pedometer",
		Name:      "step_count",
		Help:      "Step count reported for the trailing seven days.",
	})
	clientGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "viewcompass",
		Subsystem: "web",
		Name:      "connected_clients",
		Help:      "Number of websocket clients currently connected.",
	})
)

func init() {
	prometheus.MustRegister(headingGauge, headingUpdates, stepGauge, clientGauge)
}

// RecordHeading updates the heading gauge and update counter.
func RecordHeading(degrees float64) {
	headingGauge.Set(degrees)
	headingUpdates.Inc()
}

// RecordSteps updates the step-count gauge.
func RecordSteps(steps int64) {
	stepGauge.Set(float64(steps))
}

// SetConnectedClients updates the websocket client gauge.
func SetConnectedClients(n int) {
	clientGauge.Set(float64(n))
}
