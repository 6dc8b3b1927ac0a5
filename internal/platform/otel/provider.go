// Package otel configures OpenTelemetry tracing for console processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/arenacontrol/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Env selects the trace exporter.
type Env struct {
	Endpoint string `env:"ARENA_CONTROL_OTEL_ENDPOINT"`
	Enabled  string `env:"ARENA_CONTROL_OTEL_ENABLED"`
}

// Active reports whether tracing should be exported.
func (e Env) Active() bool {
	if strings.EqualFold(strings.TrimSpace(e.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(e.Endpoint) != ""
}

// Setup registers a global tracer provider for serviceName when tracing is
// active and returns its shutdown function. Inactive tracing yields a no-op
// shutdown and leaves the global provider untouched.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	var env Env
	if err := config.ParseEnv(&env); err != nil {
		return noop, err
	}
	return SetupWithEnv(ctx, serviceName, env)
}

// SetupWithEnv is Setup with explicit exporter settings.
func SetupWithEnv(ctx context.Context, serviceName string, env Env) (func(context.Context) error, error) {
	if !env.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(env.Endpoint)))
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
