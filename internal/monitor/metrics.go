package monitor

import "github.com/prometheus/client_golang/prometheus"

// Metric namespace segments.
const (
	metricNamespace = "blastscope"
	metricSubsystem = "monitor"
)

// Metrics holds the monitor's Prometheus instruments.
type Metrics struct {
	// PauseEvents counts detected pauses.
	PauseEvents prometheus.Counter

	// ActivityRecords counts RecordActivity calls.
	ActivityRecords prometheus.Counter
}

// NewMetrics creates and registers the monitor instruments.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		PauseEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "pause_events_total",
			Help:      "Number of developer activity pauses detected.",
		}),
		ActivityRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: metricSubsystem,
			Name:      "activity_records_total",
			Help:      "Number of recorded developer activity events.",
		}),
	}

	reg.MustRegister(metrics.PauseEvents, metrics.ActivityRecords)

	return metrics
}
