package telemetry

import (
	"context"
	"testing"
)

func TestHoneycombEnvWithoutKey(t *testing.T) {
	env, ok := HoneycombEnv(func(string) string { return "" })
	if ok || env != nil {
		t.Errorf("HoneycombEnv() without key = %v, %v; want nil, false", env, ok)
	}
}

func TestHoneycombEnv(t *testing.T) {
	vars := map[string]string{envAPIKey: "secret"}
	env, ok := HoneycombEnv(func(k string) string { return vars[k] })
	if !ok {
		t.Fatal("HoneycombEnv() should succeed with an API key")
	}

	if env[envOTLPEndpoint] != honeycombAPI {
		t.Errorf("endpoint = %q, want %q", env[envOTLPEndpoint], honeycombAPI)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=arcade"
	if env[envOTLPHeaders] != want {
		t.Errorf("headers = %q, want %q", env[envOTLPHeaders], want)
	}

	vars[envDataset] = "games"
	env, _ = HoneycombEnv(func(k string) string { return vars[k] })
	want = "x-honeycomb-team=secret,x-honeycomb-dataset=games"
	if env[envOTLPHeaders] != want {
		t.Errorf("headers = %q, want %q", env[envOTLPHeaders], want)
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("noop tracer should produce invalid span contexts")
	}
}
