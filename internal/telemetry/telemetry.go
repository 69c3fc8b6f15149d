// Package telemetry wires optional OpenTelemetry trace export for animation
// runs. Export is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set, so the
// library itself never touches the network.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "marquee/driver"

// Setup configures the global tracer provider from the environment.
// When OTEL_EXPORTER_OTLP_ENDPOINT is unset it does nothing and reports
// enabled=false. The returned shutdown flushes pending spans; call it on
// exit when enabled.
func Setup(ctx context.Context) (shutdown func(context.Context) error, enabled bool, err error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func(context.Context) error { return nil }, false, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors; make configurable if needed
	)
	if err != nil {
		return nil, false, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "marquee"
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, true, nil
}

// Tracer returns the tracer animation runs record spans on. It is a no-op
// tracer unless Setup enabled export.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
