// Package observability wires structured logging, tracing, and metrics for
// the blastscope binary.
package observability

import "log/slog"

// serviceName identifies this binary in logs and telemetry.
const serviceName = "blastscope"

// defaultShutdownTimeoutSec bounds telemetry flush on exit.
const defaultShutdownTimeoutSec = 5

// Config controls observability initialization.
type Config struct {
	// ServiceVersion is stamped onto the telemetry resource.
	ServiceVersion string

	// LogLevel is the minimum slog level.
	LogLevel slog.Level

	// LogJSON selects the JSON handler over the text handler.
	LogJSON bool

	// OTLPEndpoint enables span export when non-empty. Metrics always go
	// through the Prometheus exporter regardless.
	OTLPEndpoint string

	// OTLPInsecure disables TLS on the OTLP connection.
	OTLPInsecure bool
}

// DefaultConfig returns the standard configuration: info-level text logs,
// no span export.
func DefaultConfig() Config {
	return Config{
		LogLevel: slog.LevelInfo,
	}
}
