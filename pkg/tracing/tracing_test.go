package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitTracer exporter是懒连接的，没有Collector也能初始化成功
func TestInitTracer(t *testing.T) {
	shutdown, err := InitTracer("library-test", "localhost:4317")
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx, span := StartSpan(context.Background(), "library-test", "RootOperation")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
	assert.Equal(t, span.SpanContext().TraceID().String(), ExtractTraceID(ctx))
}

func TestStartSpan_Child(t *testing.T) {
	shutdown, err := InitTracer("library-test", "localhost:4317")
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx, root := StartSpan(context.Background(), "library-test", "Root")
	defer root.End()
	_, child := StartSpan(ctx, "library-test", "Child")
	defer child.End()

	assert.Equal(t, root.SpanContext().TraceID(), child.SpanContext().TraceID())
	assert.NotEqual(t, root.SpanContext().SpanID(), child.SpanContext().SpanID())
}

func TestEnd(t *testing.T) {
	shutdown, err := InitTracer("library-test", "localhost:4317")
	require.NoError(t, err)
	defer shutdown(context.Background())

	_, ok := StartSpan(context.Background(), "library-test", "Ok")
	End(ok, nil)
	assert.False(t, ok.IsRecording())

	_, failed := StartSpan(context.Background(), "library-test", "Failed")
	End(failed, errors.New("boom"))
	assert.False(t, failed.IsRecording())
}

func TestExtractTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, ExtractTraceID(context.Background()))
}
