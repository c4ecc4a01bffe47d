package tracing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	. "batchmock/pkg/observability"
)

func TestInit_DisabledReturnsUsableTracer(t *testing.T) {
	p, err := Init(context.Background(), DefaultConfig("batchmock"))
	require.NoError(t, err)

	ctx, span := p.Tracer().Start(context.Background(), "noop")
	defer span.End()

	assert.NotNil(t, p.Tracer())
	assert.NotNil(t, ctx)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestInit_EnabledExportsSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	cfg := DefaultConfig("batchmock")
	cfg.Enabled = true

	p, err := Init(context.Background(), cfg, exp)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	ctx, span := p.Tracer().Start(context.Background(), "fixture.Load")
	SetAttributes(ctx, attribute.String("fixture.path", "Job1mockFailure.json"))
	SetError(ctx, errors.New("boom"))
	assert.NotEmpty(t, TraceID(ctx))
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "fixture.Load", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.String("fixture.path", "Job1mockFailure.json"))
}

func TestTraceID_EmptyWithoutSpan(t *testing.T) {
	assert.Equal(t, "", TraceID(context.Background()))
}
