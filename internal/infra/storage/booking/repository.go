package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/dbmetrics"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/pgerrors"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"service_id",
	"client_id",
	"physiotherapist_id",
	"scheduled_at",
	"state",
	"notes",
	"created_at",
	"updated_at",
}

var detailColumns = append(bookingColumns[:len(bookingColumns):len(bookingColumns)],
	"ends_at",
	"service_name",
	"service_price",
	"service_duration_minutes",
	"client_first_name",
	"client_last_name",
	"client_email",
	"client_phone",
	"physiotherapist_first_name",
	"physiotherapist_last_name",
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование, занимающее [ScheduledAt, ScheduledAt+durationMinutes)
// Длительность фиксируется в момент создания (ends_at), последующее изменение услуги на нее не влияет.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking, durationMinutes int) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	endsAt := booking.ScheduledAt.Add(time.Duration(durationMinutes) * time.Minute)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"service_id",
			"client_id",
			"physiotherapist_id",
			"scheduled_at",
			"ends_at",
			"state",
			"notes",
		).
		Values(
			booking.ServiceID,
			booking.ClientID,
			booking.PhysiotherapistID,
			booking.ScheduledAt,
			endsAt,
			booking.State,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", classify(err), err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку до конца обновления
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(bookingDest(&booking)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", classify(err), err)
	}

	return &booking, nil
}

// GetDetailByID получает бронирование со снимками услуги, клиента и физиотерапевта
func (r *Repository) GetDetailByID(ctx context.Context, id int64) (*domain.BookingDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(detailColumns...).
		From("v_bookings_detail").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailByID - build select query: %v", ErrBuildQuery, err)
	}

	detail, err := scanDetail(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetDetailByID - scan booking: %v", ErrScanRow, err)
	}

	return detail, nil
}

// ListDetails возвращает бронирования по фильтру, новые сначала
func (r *Repository) ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetail, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(detailColumns...).
		From("v_bookings_detail")

	if filter.ClientID != nil {
		builder = builder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}
	if filter.State != nil {
		builder = builder.Where(squirrel.Eq{"state": *filter.State})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"scheduled_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"scheduled_at": *filter.To})
	}

	query, args, err := builder.OrderBy("scheduled_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.BookingDetail, 0)
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan booking: %v", ErrScanRow, err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetails - rows iteration: %v", ErrScanRow, err)
	}

	return details, nil
}

// GetScheduled возвращает неотмененные бронирования, пересекающиеся с [from, to)
// physiotherapistID ограничивает выборку бронированиями одного физиотерапевта.
// Внутри транзакции строки блокируются (FOR UPDATE) до ее завершения.
func (r *Repository) GetScheduled(ctx context.Context, from, to time.Time, physiotherapistID *int64) ([]domain.ScheduledBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := scheduledQuery(ctx, from, to, physiotherapistID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduled - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduled - execute query: %v", classify(err), err)
	}
	defer rows.Close()

	scheduled := make([]domain.ScheduledBooking, 0)
	for rows.Next() {
		var (
			b      domain.ScheduledBooking
			endsAt time.Time
		)
		if err := rows.Scan(&b.BookingID, &b.PhysiotherapistID, &b.Start, &endsAt, &b.State); err != nil {
			return nil, fmt.Errorf("%w: GetScheduled - scan row: %v", ErrScanRow, err)
		}
		b.DurationMinutes = int(endsAt.Sub(b.Start) / time.Minute)
		scheduled = append(scheduled, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetScheduled - rows iteration: %v", ErrScanRow, err)
	}

	return scheduled, nil
}

// Update применяет изменения и ставит updated_at
func (r *Repository) Update(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.State != nil {
		builder = builder.Set("state", *update.State)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	if update.PhysiotherapistID != nil {
		builder = builder.Set("physiotherapist_id", *update.PhysiotherapistID)
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(bookingDest(&booking)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", classify(err), err)
	}

	return &booking, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetDashboardStats считает бронирования на [dayStart, dayEnd), ожидающие, завершенные и число клиентов
func (r *Repository) GetDashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (*domain.DashboardStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE scheduled_at >= ? AND scheduled_at < ? AND state <> ?)",
			dayStart, dayEnd, domain.StateCancelled)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE state = ?)", domain.StatePending)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE state = ?)", domain.StateCompleted)).
		Column(squirrel.Expr("(SELECT COUNT(*) FROM users u JOIN roles r ON r.id = u.role_id WHERE r.name = ?)",
			domain.RoleClient)).
		From("bookings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDashboardStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.DashboardStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TodayBookings,
		&stats.PendingBookings,
		&stats.CompletedBookings,
		&stats.TotalClients,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDashboardStats - scan row: %v", ErrScanRow, err)
	}

	return &stats, nil
}

func scheduledQuery(ctx context.Context, from, to time.Time, physiotherapistID *int64) (string, []interface{}, error) {
	builder := psqlbuilder.Select(
		"id",
		"physiotherapist_id",
		"scheduled_at",
		"ends_at",
		"state",
	).
		From("bookings").
		Where(squirrel.Lt{"scheduled_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		Where(squirrel.NotEq{"state": domain.StateCancelled})

	if physiotherapistID != nil {
		builder = builder.Where(squirrel.Eq{"physiotherapist_id": *physiotherapistID})
	}

	builder = builder.OrderBy("scheduled_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

func bookingDest(b *domain.Booking) []interface{} {
	return []interface{}{
		&b.ID,
		&b.ServiceID,
		&b.ClientID,
		&b.PhysiotherapistID,
		&b.ScheduledAt,
		&b.State,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDetail(row rowScanner) (*domain.BookingDetail, error) {
	var (
		d              domain.BookingDetail
		physioFirst    sql.NullString
		physioLastName sql.NullString
	)

	dest := append(bookingDest(&d.Booking),
		&d.EndsAt,
		&d.Service.Name,
		&d.Service.Price,
		&d.Service.DurationMinutes,
		&d.Client.FirstName,
		&d.Client.LastName,
		&d.Client.Email,
		&d.Client.Phone,
		&physioFirst,
		&physioLastName,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	d.Service.ID = d.ServiceID
	d.Client.ID = d.ClientID
	if d.PhysiotherapistID != nil {
		d.Physiotherapist = &domain.PhysiotherapistInfo{
			ID:        *d.PhysiotherapistID,
			FirstName: physioFirst.String,
			LastName:  physioLastName.String,
		}
	}

	return &d, nil
}

// classify сопоставляет ошибки PostgreSQL ошибкам репозитория
func classify(err error) error {
	switch {
	case pgerrors.IsExclusionViolation(err):
		return ErrSlotNotAvailable
	case pgerrors.IsSerializationFailure(err):
		return ErrConcurrentUpdate
	case pgerrors.IsForeignKeyViolation(err):
		return ErrReferenceNotFound
	default:
		return ErrExecQuery
	}
}
