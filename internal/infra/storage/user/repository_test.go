package user

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/psqlbuilder"
)

func TestRoleSubqueryPlaceholders(t *testing.T) {
	query, args, err := psqlbuilder.Insert("users").
		Columns("role_id", "email").
		Values(squirrel.Expr("(SELECT id FROM roles WHERE name = ?)", domain.RoleClient), "a@x.com").
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (role_id,email) VALUES ((SELECT id FROM roles WHERE name = $1),$2)", query)
	assert.Equal(t, []interface{}{domain.RoleClient, "a@x.com"}, args)
}
