package login

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	bcryptHasher "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/security/bcrypt"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/infra/security/tokens"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/testutil/memstore"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type failingLastLogin struct {
	UserRepository
}

func (failingLastLogin) UpdateLastLogin(context.Context, int64, time.Time) error {
	return assert.AnError
}

type countingHasher struct {
	PasswordHasher
	verified []string
}

func (h *countingHasher) Verify(password, hash string) bool {
	h.verified = append(h.verified, hash)
	return h.PasswordHasher.Verify(password, hash)
}

func setup(t *testing.T) (*memstore.Store, *tokens.Manager, *bcryptHasher.Hasher) {
	t.Helper()

	store := memstore.New()
	hasher := bcryptHasher.NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	store.SeedUser(domain.User{FirstName: "Ana", LastName: "Lopez", Email: "real@x.com", Role: domain.RoleClient}, hash)

	return store, tokens.NewManager("0123456789abcdef0123", "physiotime", "clients", time.Hour), hasher
}

func TestLogin_Success(t *testing.T) {
	store, tm, hasher := setup(t)
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := NewUseCase(store.Users, hasher, tm, fixedTime{now}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Email: "  Real@X.com ", Password: "password123"})
	require.NoError(t, err)

	assert.Equal(t, "real@x.com", resp.Email)
	assert.Equal(t, domain.RoleClient, resp.Role)

	actor, err := tm.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, actor.UserID)
	assert.Equal(t, domain.RoleClient, actor.Role)

	user, err := store.Users.GetByID(context.Background(), resp.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.Equal(t, now, *user.LastLogin)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	store, tm, hasher := setup(t)
	uc := NewUseCase(store.Users, hasher, tm, fixedTime{time.Now()}, logger.NewNop())

	_, errUnknown := uc.Execute(context.Background(), &Request{Email: "nonexistent@x.com", Password: "anything"})
	_, errWrong := uc.Execute(context.Background(), &Request{Email: "real@x.com", Password: "wrongpassword"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, domain.ErrUnauthenticated, domain.KindOf(errUnknown))
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_LastLoginFailureIsNotFatal(t *testing.T) {
	store, tm, hasher := setup(t)
	uc := NewUseCase(failingLastLogin{store.Users}, hasher, tm, fixedTime{time.Now()}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Email: "real@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_EmptyInput(t *testing.T) {
	store, tm, hasher := setup(t)
	uc := NewUseCase(store.Users, hasher, tm, fixedTime{time.Now()}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Email: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogin_UnknownEmailStillChecksPassword(t *testing.T) {
	store, tm, hasher := setup(t)
	counting := &countingHasher{PasswordHasher: hasher}
	uc := NewUseCase(store.Users, counting, tm, fixedTime{time.Now()}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Email: "nonexistent@x.com", Password: "anything"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// проверка по подставному хэшу, а не мгновенный отказ
	require.Len(t, counting.verified, 1)
	assert.NotEmpty(t, counting.verified[0])
	assert.False(t, hasher.Verify("anything", counting.verified[0]))
	assert.True(t, hasher.Verify(dummyPassword, counting.verified[0]))

	_, err = uc.Execute(context.Background(), &Request{Email: "real@x.com", Password: "wrongpassword"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Len(t, counting.verified, 2)
}
