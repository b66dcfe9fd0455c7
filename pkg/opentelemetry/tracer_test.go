package opentelemetry

import (
	"context"
	"testing"
	"time"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitTracer(t *testing.T) {
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)

	cfg := &config.Config{Env: "dev", Tracing: config.TracingConfig{OtelEndpoint: "localhost:4317"}}
	cleanup := InitTracer(context.Background(), cfg, logger)
	require.NotNil(t, cleanup)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = cleanup(ctx)
}
