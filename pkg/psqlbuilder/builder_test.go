package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "email").
		From("users").
		Where(squirrel.Eq{"email": "a@x.com"}).
		Where(squirrel.Eq{"role_id": 2}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, email FROM users WHERE email = $1 AND role_id = $2", query)
	assert.Equal(t, []interface{}{"a@x.com", 2}, args)
}

func TestUpdate_WithExpression(t *testing.T) {
	query, args, err := Update("bookings").
		Set("state", "confirmed").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": int64(7)}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET state = $1, updated_at = NOW() WHERE id = $2", query)
	assert.Equal(t, []interface{}{"confirmed", int64(7)}, args)
}

func TestInsert_WithReturning(t *testing.T) {
	query, _, err := Insert("services").
		Columns("name", "price").
		Values("Massage", 450.0).
		Suffix("RETURNING id").
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO services (name,price) VALUES ($1,$2) RETURNING id", query)
}

func TestDelete(t *testing.T) {
	query, args, err := Delete("services").Where(squirrel.Eq{"id": 3}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM services WHERE id = $1", query)
	assert.Equal(t, []interface{}{3}, args)
}
