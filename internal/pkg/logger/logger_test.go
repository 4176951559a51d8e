package logger

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud")
	assert.Error(t, err)
}

func TestWithActionAndFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := ctxzap.ToContext(context.Background(), zap.New(core))

	ctx = AddFields(WithAction(ctx, "CreateNDA"), zap.String("kind", "nda"))
	ctxzap.Info(ctx, "done")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "CreateNDA", entries[0].ContextMap()["action"])
	assert.Equal(t, "nda", entries[0].ContextMap()["kind"])
}
