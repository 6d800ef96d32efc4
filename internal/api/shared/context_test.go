package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := WithIdentity(context.Background(), "user@example.com")
		email, ok := Identity(ctx)
		assert.True(t, ok)
		assert.Equal(t, "user@example.com", email)
	})

	t.Run("absent identity", func(t *testing.T) {
		t.Parallel()
		email, ok := Identity(context.Background())
		assert.False(t, ok)
		assert.Empty(t, email)
	})

	t.Run("empty identity counts as anonymous", func(t *testing.T) {
		t.Parallel()
		_, ok := Identity(WithIdentity(context.Background(), ""))
		assert.False(t, ok)
	})
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32)
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))

	assert.Empty(t, GetTraceID(context.Background()))
}
