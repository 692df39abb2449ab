package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/dbmetrics"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/pgerrors"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/psqlbuilder"
)

var userColumns = []string{
	"u.id",
	"r.name",
	"u.first_name",
	"u.last_name",
	"u.email",
	"u.phone",
	"u.created_at",
	"u.last_login",
}

var clientStatsColumns = []string{
	"id",
	"full_name",
	"email",
	"phone",
	"total_bookings",
	"last_visit",
	"preferred_service",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя с указанной ролью
func (r *Repository) Create(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"role_id",
			"first_name",
			"last_name",
			"email",
			"phone",
			"password_hash",
		).
		Values(
			squirrel.Expr("(SELECT id FROM roles WHERE name = ?)", u.Role),
			u.FirstName,
			u.LastName,
			u.Email,
			u.Phone,
			u.PasswordHash,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := &domain.User{
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return created, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users u").
		Join("roles r ON r.id = u.role_id").
		Where(squirrel.Eq{"u.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Role,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.CreatedAt,
		&u.LastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	return &u, nil
}

// GetCredentialsByEmail получает хэш пароля и роль по email
func (r *Repository) GetCredentialsByEmail(ctx context.Context, email string) (*domain.UserCredentials, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("u.id", "u.email", "u.password_hash", "r.name").
		From("users u").
		Join("roles r ON r.id = u.role_id").
		Where(squirrel.Eq{"u.email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCredentialsByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.UserCredentials
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.UserID, &c.Email, &c.PasswordHash, &c.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: GetCredentialsByEmail - scan row: %v", ErrScanRow, err)
	}

	return &c, nil
}

// ExistsByEmail проверяет, зарегистрирован ли email
func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByEmail - scan row: %v", ErrScanRow, err)
	}

	return exists, nil
}

// UpdateLastLogin записывает время последнего входа
func (r *Repository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLastLogin - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateProfile обновляет контактные данные. Роль и email не меняются.
func (r *Repository) UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("users").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return nil, ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// ListClients возвращает статистику по всем клиентам, упорядоченную по имени
func (r *Repository) ListClients(ctx context.Context) ([]*domain.ClientStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientStatsColumns...).
		From("v_client_stats").
		OrderBy("full_name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListClients - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClients - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.ClientStats, 0)
	for rows.Next() {
		c, err := scanClientStats(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListClients - scan row: %v", ErrScanRow, err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClients - rows iteration: %v", ErrScanRow, err)
	}

	return clients, nil
}

// GetClientStats возвращает статистику клиента. Для администраторов - ErrUserNotFound.
func (r *Repository) GetClientStats(ctx context.Context, id int64) (*domain.ClientStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientStatsColumns...).
		From("v_client_stats").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetClientStats - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClientStats(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: GetClientStats - scan row: %v", ErrScanRow, err)
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClientStats(row rowScanner) (*domain.ClientStats, error) {
	var c domain.ClientStats
	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.TotalBookings,
		&c.LastVisit,
		&c.PreferredService,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
