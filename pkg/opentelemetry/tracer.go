package opentelemetry

import (
	"context"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
)

// InitTracer registers a global tracer provider exporting spans to the configured
// OTLP collector and returns its shutdown func.
func InitTracer(ctx context.Context, cfg *config.Config, logger lumber.Logger) func(context.Context) error {
	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.Tracing.OtelEndpoint),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		logger.Errorf("failed to create otlp trace exporter, error: %v", err)
		return func(context.Context) error { return nil }
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(constants.ServiceName),
			semconv.ServiceVersionKey.String(constants.BinaryVersion),
			attribute.String("environment", cfg.Env),
		),
	)
	if err != nil {
		logger.Errorf("failed to create otel resource, error: %v", err)
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	logger.Infof("Tracer initialized with collector %s", cfg.Tracing.OtelEndpoint)

	return tp.Shutdown
}
