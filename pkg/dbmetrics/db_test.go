package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationOf(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"SELECT id FROM users", "select"},
		{"  insert into bookings (id) values ($1)", "insert"},
		{"\n\tUPDATE services SET name = $1", "update"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, operationOf(tt.query), tt.query)
	}
}

type stubTx struct {
	DBExecutor
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func TestGetExecutor(t *testing.T) {
	db := &DB{}

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx := &stubTx{}
	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}
