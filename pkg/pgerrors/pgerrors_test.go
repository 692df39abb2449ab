package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pq.Error{Code: "23505", Constraint: "users_email_key"})
	exclusion := &pq.Error{Code: "23P01", Constraint: "bookings_no_physio_overlap"}
	serialization := &pq.Error{Code: "40001"}
	deadlock := &pq.Error{Code: "40P01"}
	fk := &pq.Error{Code: "23503"}
	plain := errors.New("connection refused")

	assert.True(t, IsUniqueViolation(unique))
	assert.Equal(t, "users_email_key", Constraint(unique))
	assert.True(t, IsExclusionViolation(exclusion))
	assert.True(t, IsSerializationFailure(serialization))
	assert.True(t, IsSerializationFailure(deadlock))
	assert.True(t, IsForeignKeyViolation(fk))

	assert.False(t, IsUniqueViolation(plain))
	assert.Equal(t, "", Code(plain))
	assert.Equal(t, "", Constraint(nil))
}
