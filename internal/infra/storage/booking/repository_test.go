package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/dbmetrics"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/ptr"
)

type stubTx struct {
	dbmetrics.DBExecutor
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

func TestScheduledQuery(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	query, args, err := scheduledQuery(context.Background(), from, to, nil)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, physiotherapist_id, scheduled_at, ends_at, state FROM bookings "+
			"WHERE scheduled_at < $1 AND ends_at > $2 AND state <> $3 ORDER BY scheduled_at ASC",
		query)
	assert.Equal(t, []interface{}{to, from, domain.StateCancelled}, args)
}

func TestScheduledQuery_LocksRowsInTransaction(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := dbmetrics.WithTx(context.Background(), stubTx{})

	query, args, err := scheduledQuery(ctx, from, from.AddDate(0, 0, 1), ptr.Ptr(int64(3)))
	require.NoError(t, err)
	assert.Contains(t, query, "AND physiotherapist_id = $4")
	assert.Contains(t, query, "ORDER BY scheduled_at ASC FOR UPDATE")
	assert.Len(t, args, 4)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ErrSlotNotAvailable, classify(&pq.Error{Code: "23P01"}))
	assert.Equal(t, ErrReferenceNotFound, classify(&pq.Error{Code: "23503"}))
	assert.Equal(t, ErrConcurrentUpdate, classify(&pq.Error{Code: "40001"}))
	assert.Equal(t, ErrExecQuery, classify(errors.New("connection refused")))
}
