// Package telemetry provides OpenTelemetry tracing exported to Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName      = "arcade"
	honeycombAPI     = "https://api.honeycomb.io"
	defaultDataset   = "arcade"
	envAPIKey        = "HONEYCOMB_ARCADE_API_KEY"
	envDataset       = "HONEYCOMB_ARCADE_DATASET"
	envOTLPEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOTLPHeaders   = "OTEL_EXPORTER_OTLP_HEADERS"
	tracerNamePrefix = serviceName + "/"
)

// Version is reported as service.version.
var Version = "0.1.0"

// HoneycombEnv derives the standard OTEL_* exporter variables from the
// Honeycomb API key and dataset. ok is false when no API key is set.
func HoneycombEnv(getenv func(string) string) (env map[string]string, ok bool) {
	apiKey := getenv(envAPIKey)
	if apiKey == "" {
		return nil, false
	}
	dataset := getenv(envDataset)
	if dataset == "" {
		dataset = defaultDataset
	}
	return map[string]string{
		envOTLPEndpoint: honeycombAPI,
		envOTLPHeaders:  fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset),
	}, true
}

// ConfigureEnv exports the Honeycomb settings as OTEL_* variables.
// It returns false, leaving the environment untouched, when no API key is set.
func ConfigureEnv() bool {
	env, ok := HoneycombEnv(os.Getenv)
	if !ok {
		return false
	}
	for k, v := range env {
		os.Setenv(k, v)
	}
	return true
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter configured from
// the standard OTEL_* environment variables.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	// Built without resource.Default() to avoid schema URL conflicts.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", Version),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerNamePrefix + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerNamePrefix + "noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
