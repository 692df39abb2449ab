package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager(testSecret, "physiotime", "clients", time.Hour)

	token, err := m.Generate(42, "a@x.com", domain.RoleClient)
	require.NoError(t, err)

	actor, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{UserID: 42, Email: "a@x.com", Role: domain.RoleClient}, actor)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager(testSecret, "physiotime", "clients", time.Hour)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.Generate(42, "a@x.com", domain.RoleClient)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestManager_WrongSecretOrAudience(t *testing.T) {
	m := NewManager(testSecret, "physiotime", "clients", time.Hour)
	token, err := m.Generate(1, "admin@clinic.mx", domain.RoleAdmin)
	require.NoError(t, err)

	other := NewManager("another-secret-another-secret!!", "physiotime", "clients", time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherAudience := NewManager(testSecret, "physiotime", "staff", time.Hour)
	_, err = otherAudience.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsUnknownRole(t *testing.T) {
	m := NewManager(testSecret, "physiotime", "clients", time.Hour)
	claims := Claims{
		UserID: 5,
		Role:   "ROOT",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "physiotime",
			Audience:  jwt.ClaimStrings{"clients"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Garbage(t *testing.T) {
	m := NewManager(testSecret, "physiotime", "clients", time.Hour)
	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
