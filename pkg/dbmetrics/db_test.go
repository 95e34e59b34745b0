package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM reservations"))
	assert.Equal(t, "insert", operation("\n  INSERT INTO messages (name) VALUES ($1)"))
	assert.Equal(t, "unknown", operation("   "))
}

func TestGetExecutor_FallsBackWithoutTx(t *testing.T) {
	fallback := &DB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, fallback, GetExecutor(ctx, fallback))
}

func TestGetExecutor_UsesTxFromContext(t *testing.T) {
	tx := &Tx{}
	ctx := WithTx(context.Background(), tx)

	assert.True(t, IsInTransaction(ctx))
	assert.Same(t, tx, GetExecutor(ctx, &DB{}))
}
