package login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/user"
)

// UseCase use case для входа по email и паролю
type UseCase struct {
	userRepo     UserRepository
	hasher       PasswordHasher
	tokens       TokenGenerator
	timeProvider TimeProvider
	logger       Logger

	// хэш для проверки при неизвестном email, чтобы время ответа не выдавало наличие пользователя
	dummyHash string
}

const dummyPassword = "physiotime-dummy-password"

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Warn("Login: failed to prepare dummy hash: %v", err)
	}
	return &UseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
		dummyHash:    dummyHash,
	}
}

// Execute проверяет учетные данные и выпускает токен
// Неизвестный email и неверный пароль неразличимы для вызывающего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	creds, err := uc.userRepo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("Login: unknown email")
			uc.hasher.Verify(req.Password, uc.dummyHash)
			return nil, ErrInvalidCredentials
		}
		uc.logger.Error("Login: failed to get credentials: %v", err)
		return nil, fmt.Errorf("%w: failed to get credentials: %v", ErrInternal, err)
	}

	if !uc.hasher.Verify(req.Password, creds.PasswordHash) {
		uc.logger.Warn("Login: wrong password for user=%d", creds.UserID)
		return nil, ErrInvalidCredentials
	}

	// Не удалось записать время входа - не повод отказывать во входе
	if err := uc.userRepo.UpdateLastLogin(ctx, creds.UserID, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("Login: failed to update last login for user=%d: %v", creds.UserID, err)
	}

	token, err := uc.tokens.Generate(creds.UserID, creds.Email, creds.Role)
	if err != nil {
		uc.logger.Error("Login: failed to generate token for user=%d: %v", creds.UserID, err)
		return nil, fmt.Errorf("%w: failed to generate token: %v", ErrInternal, err)
	}

	uc.logger.Info("Login: user=%d logged in, role=%s", creds.UserID, creds.Role)

	return &Response{
		Token:  token,
		UserID: creds.UserID,
		Email:  creds.Email,
		Role:   creds.Role,
	}, nil
}
