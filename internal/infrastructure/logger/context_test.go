package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the attached logger", func(t *testing.T) {
		log := zap.NewNop()
		ctx := WithContext(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("bare context gets a no-op logger", func(t *testing.T) {
		log := FromContext(context.Background())
		require.NotNil(t, log)
		log.Info("must not panic")
	})
}

func TestRequestIdentityChaining(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	log := zap.New(core)
	ctx := context.Background()

	ctx, log = WithRequestID(ctx, log, "req-42")
	ctx, log = WithTenantID(ctx, log, "tenant-abc")
	ctx, log = WithUserID(ctx, log, "user-7")

	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Equal(t, "tenant-abc", GetTenantID(ctx))
	assert.Equal(t, "user-7", GetUserID(ctx))

	// The enriched logger tags every entry with all three ids
	FromContext(ctx).Info("partnership requested")
	logs := recorded.All()
	require.Len(t, logs, 1)
	fields := logs[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "tenant-abc", fields["tenant_id"])
	assert.Equal(t, "user-7", fields["user_id"])
}

func TestGetters_Empty(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetTenantID(ctx))
	assert.Empty(t, GetUserID(ctx))
}

func TestWithTenantID_Overwrite(t *testing.T) {
	ctx := context.Background()
	ctx, _ = WithTenantID(ctx, zap.NewNop(), "first")
	ctx, _ = WithTenantID(ctx, zap.NewNop(), "second")
	assert.Equal(t, "second", GetTenantID(ctx))
}

func TestWithTraceContext(t *testing.T) {
	t.Run("no span leaves the logger unchanged", func(t *testing.T) {
		log := zap.NewNop()
		assert.Same(t, log, WithTraceContext(context.Background(), log))
	})

	t.Run("valid span tags trace and span ids", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		log := zap.New(core)

		traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
		require.NoError(t, err)
		spanID, err := trace.SpanIDFromHex("0102030405060708")
		require.NoError(t, err)
		spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: traceID,
			SpanID:  spanID,
		})
		ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

		WithTraceContext(ctx, log).Info("traced")
		logs := recorded.All()
		require.Len(t, logs, 1)
		fields := logs[0].ContextMap()
		assert.Equal(t, traceID.String(), fields["trace_id"])
		assert.Equal(t, spanID.String(), fields["span_id"])
	})

	t.Run("invalid span context leaves the logger unchanged", func(t *testing.T) {
		log := zap.NewNop()
		ctx := trace.ContextWithSpanContext(context.Background(), trace.SpanContext{})
		assert.Same(t, log, WithTraceContext(ctx, log))
	})
}
