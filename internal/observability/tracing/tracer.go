// Package tracing provides OpenTelemetry tracing for the refresh pipeline
// and the boundary HTTP layer.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the service.
var tracer = otel.Tracer("ruraldata")

// GetTracer returns the global tracer for creating spans around pipeline
// stages (fetch, parse, filter, cache) and HTTP requests.
func GetTracer() trace.Tracer {
	return tracer
}

// Setup installs an SDK tracer provider and returns its shutdown
// function. Exporters are wired by the deployment environment; without
// one, spans are still created and propagated so downstream collectors
// can pick them up.
func Setup() func() {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return func() {
		_ = tp.Shutdown(context.Background())
	}
}
