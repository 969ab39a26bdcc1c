// Package tracing provides OpenTelemetry tracing for HTTP requests.
// No SDK is configured here; the global provider is a no-op unless the
// operator installs an exporter at startup.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the application.
var tracer = otel.Tracer("pressroom")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
