package register

import (
	"context"
	"errors"
	"fmt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	userRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/user"
)

// UseCase use case для регистрации клиента
type UseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, hasher PasswordHasher, logger Logger) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute регистрирует нового пользователя с ролью CLIENT
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = normalize(req)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Error("Register: failed to check email: %v", err)
		return nil, fmt.Errorf("%w: failed to check email: %v", ErrInternal, err)
	}
	if exists {
		uc.logger.Warn("Register: email already registered")
		return nil, ErrEmailExists
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	user, err := uc.userRepo.Create(ctx, domain.NewUser{
		Role:         domain.RoleClient,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
	})
	if err != nil {
		// Параллельная регистрация с тем же email
		if errors.Is(err, userRepo.ErrEmailExists) {
			uc.logger.Warn("Register: email registered concurrently")
			return nil, ErrEmailExists
		}
		uc.logger.Error("Register: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
	}

	uc.logger.Info("Register: user=%d registered", user.ID)

	return &Response{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}
