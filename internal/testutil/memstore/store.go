// Package memstore in-memory реализации репозиториев для тестов use case и сервисов
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	bookingRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/booking"
	paymentRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/payment"
	serviceRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/service"
	userRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/user"
)

// Store общее хранилище. Репозитории разделяют один мьютекс и данные,
// чтобы статистика и детали бронирований видели пользователей и услуги.
type Store struct {
	mu sync.Mutex

	users    map[int64]*userRecord
	services map[int64]*domain.Service
	bookings map[int64]*bookingRecord
	payments map[int64]*domain.Payment

	nextID int64
	now    func() time.Time

	Users    *UserRepository
	Services *ServiceRepository
	Bookings *BookingRepository
	Payments *PaymentRepository
	Tx       *TxManager
}

type userRecord struct {
	user         domain.User
	passwordHash string
}

type bookingRecord struct {
	booking         domain.Booking
	durationMinutes int
}

// New создает пустое хранилище
func New() *Store {
	s := &Store{
		users:    make(map[int64]*userRecord),
		services: make(map[int64]*domain.Service),
		bookings: make(map[int64]*bookingRecord),
		payments: make(map[int64]*domain.Payment),
		now:      time.Now,
	}
	s.Users = &UserRepository{s: s}
	s.Services = &ServiceRepository{s: s}
	s.Bookings = &BookingRepository{s: s}
	s.Payments = &PaymentRepository{s: s}
	s.Tx = &TxManager{}
	return s
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// SeedUser добавляет пользователя в обход use case регистрации
func (s *Store) SeedUser(u domain.User, passwordHash string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.id()
	u.Email = strings.ToLower(u.Email)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	s.users[u.ID] = &userRecord{user: u, passwordHash: passwordHash}
	res := u
	return &res
}

// SeedService добавляет услугу
func (s *Store) SeedService(svc domain.Service) *domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = s.id()
	s.services[svc.ID] = &svc
	res := svc
	return &res
}

// TxManager выполняет функцию без изоляции. Порядок вызовов фиксируется для проверок.
type TxManager struct {
	mu    sync.Mutex
	Calls []string
}

func (m *TxManager) record(kind string) {
	m.mu.Lock()
	m.Calls = append(m.Calls, kind)
	m.mu.Unlock()
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.record("Do")
	return fn(ctx)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.record("DoSerializable")
	return fn(ctx)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.record("DoReadOnly")
	return fn(ctx)
}

// UserRepository in-memory аналог storage/user.Repository
type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, u domain.NewUser) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.users {
		if rec.user.Email == u.Email {
			return nil, userRepo.ErrEmailExists
		}
	}

	created := domain.User{
		ID:        r.s.id(),
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: r.s.now(),
	}
	r.s.users[created.ID] = &userRecord{user: created, passwordHash: u.PasswordHash}

	res := created
	return &res, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	res := rec.user
	return &res, nil
}

func (r *UserRepository) GetCredentialsByEmail(_ context.Context, email string) (*domain.UserCredentials, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.users {
		if rec.user.Email == email {
			return &domain.UserCredentials{
				UserID:       rec.user.ID,
				Email:        rec.user.Email,
				PasswordHash: rec.passwordHash,
				Role:         rec.user.Role,
			}, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.users {
		if rec.user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	rec.user.LastLogin = &at
	return nil
}

func (r *UserRepository) UpdateProfile(_ context.Context, id int64, update domain.ProfileUpdate) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	if update.FirstName != nil {
		rec.user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		rec.user.LastName = *update.LastName
	}
	if update.Phone != nil {
		phone := *update.Phone
		rec.user.Phone = &phone
	}
	res := rec.user
	return &res, nil
}

func (r *UserRepository) ListClients(_ context.Context) ([]*domain.ClientStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.ClientStats, 0)
	for _, rec := range r.s.users {
		if rec.user.Role == domain.RoleClient {
			res = append(res, r.s.clientStats(rec))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].FullName == res[j].FullName {
			return res[i].ID < res[j].ID
		}
		return res[i].FullName < res[j].FullName
	})
	return res, nil
}

func (r *UserRepository) GetClientStats(_ context.Context, id int64) (*domain.ClientStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.users[id]
	if !ok || rec.user.Role != domain.RoleClient {
		return nil, userRepo.ErrUserNotFound
	}
	return r.s.clientStats(rec), nil
}

func (s *Store) clientStats(rec *userRecord) *domain.ClientStats {
	stats := &domain.ClientStats{
		ID:       rec.user.ID,
		FullName: rec.user.FullName(),
		Email:    rec.user.Email,
		Phone:    rec.user.Phone,
	}

	perService := make(map[string]int)
	for _, b := range s.bookings {
		if b.booking.ClientID != rec.user.ID {
			continue
		}
		stats.TotalBookings++
		if svc, ok := s.services[b.booking.ServiceID]; ok {
			perService[svc.Name]++
		}
		if b.booking.State == domain.StateCompleted {
			at := b.booking.ScheduledAt
			if stats.LastVisit == nil || at.After(*stats.LastVisit) {
				stats.LastVisit = &at
			}
		}
	}

	best, bestCount := "", 0
	for name, count := range perService {
		if count > bestCount || (count == bestCount && name < best) {
			best, bestCount = name, count
		}
	}
	if bestCount > 0 {
		stats.PreferredService = &best
	}

	return stats
}

// ServiceRepository in-memory аналог storage/service.Repository
type ServiceRepository struct {
	s *Store
}

func (r *ServiceRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc.ID = r.s.id()
	svc.CreatedAt = r.s.now()
	stored := *svc
	r.s.services[svc.ID] = &stored
	return svc, nil
}

func (r *ServiceRepository) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	res := *svc
	return &res, nil
}

func (r *ServiceRepository) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.Service, 0)
	for _, svc := range r.s.services {
		if activeOnly && !svc.IsActive {
			continue
		}
		cp := *svc
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Name == res[j].Name {
			return res[i].ID < res[j].ID
		}
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (r *ServiceRepository) Update(_ context.Context, id int64, update domain.ServiceUpdate) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	if update.Name != nil {
		svc.Name = *update.Name
	}
	if update.Description != nil {
		d := *update.Description
		svc.Description = &d
	}
	if update.Price != nil {
		svc.Price = *update.Price
	}
	if update.DurationMinutes != nil {
		svc.DurationMinutes = *update.DurationMinutes
	}
	if update.IsActive != nil {
		svc.IsActive = *update.IsActive
	}
	res := *svc
	return &res, nil
}

func (r *ServiceRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	for _, b := range r.s.bookings {
		if b.booking.ServiceID == id {
			return serviceRepo.ErrServiceInUse
		}
	}
	for _, p := range r.s.payments {
		if p.ServiceID == id {
			return serviceRepo.ErrServiceInUse
		}
	}
	delete(r.s.services, id)
	return nil
}

// BookingRepository in-memory аналог storage/booking.Repository
// Повторяет exclusion constraint: бронирования одного физиотерапевта не пересекаются.
type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking, durationMinutes int) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[b.ServiceID]; !ok {
		return nil, bookingRepo.ErrReferenceNotFound
	}
	if _, ok := r.s.users[b.ClientID]; !ok {
		return nil, bookingRepo.ErrReferenceNotFound
	}

	rec := &bookingRecord{booking: *b, durationMinutes: durationMinutes}
	if r.s.conflicts(rec, 0) {
		return nil, bookingRepo.ErrSlotNotAvailable
	}

	now := r.s.now()
	rec.booking.ID = r.s.id()
	rec.booking.CreatedAt = now
	rec.booking.UpdatedAt = now
	r.s.bookings[rec.booking.ID] = rec

	*b = rec.booking
	return b, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	res := rec.booking
	return &res, nil
}

func (r *BookingRepository) GetDetailByID(_ context.Context, id int64) (*domain.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.s.detail(rec), nil
}

func (r *BookingRepository) ListDetails(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.BookingDetail, 0)
	for _, rec := range r.s.bookings {
		b := rec.booking
		if filter.ClientID != nil && b.ClientID != *filter.ClientID {
			continue
		}
		if filter.State != nil && b.State != *filter.State {
			continue
		}
		if filter.From != nil && b.ScheduledAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !b.ScheduledAt.Before(*filter.To) {
			continue
		}
		res = append(res, r.s.detail(rec))
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].ScheduledAt.Equal(res[j].ScheduledAt) {
			return res[i].ID > res[j].ID
		}
		return res[i].ScheduledAt.After(res[j].ScheduledAt)
	})
	return res, nil
}

func (r *BookingRepository) GetScheduled(_ context.Context, from, to time.Time, physiotherapistID *int64) ([]domain.ScheduledBooking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]domain.ScheduledBooking, 0)
	for _, rec := range r.s.bookings {
		sb := rec.scheduled()
		if sb.State == domain.StateCancelled || !sb.Overlaps(from, to) {
			continue
		}
		if physiotherapistID != nil && (sb.PhysiotherapistID == nil || *sb.PhysiotherapistID != *physiotherapistID) {
			continue
		}
		res = append(res, sb)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Start.Before(res[j].Start) })
	return res, nil
}

func (r *BookingRepository) Update(_ context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}

	next := *rec
	if update.State != nil {
		next.booking.State = *update.State
	}
	if update.Notes != nil {
		notes := *update.Notes
		next.booking.Notes = &notes
	}
	if update.PhysiotherapistID != nil {
		physio := *update.PhysiotherapistID
		next.booking.PhysiotherapistID = &physio
	}
	if r.s.conflicts(&next, id) {
		return nil, bookingRepo.ErrSlotNotAvailable
	}

	next.booking.UpdatedAt = r.s.now()
	*rec = next

	res := rec.booking
	return &res, nil
}

func (r *BookingRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.s.bookings, id)
	return nil
}

func (r *BookingRepository) GetDashboardStats(_ context.Context, dayStart, dayEnd time.Time) (*domain.DashboardStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var stats domain.DashboardStats
	for _, rec := range r.s.bookings {
		b := rec.booking
		if b.State != domain.StateCancelled && !b.ScheduledAt.Before(dayStart) && b.ScheduledAt.Before(dayEnd) {
			stats.TodayBookings++
		}
		switch b.State {
		case domain.StatePending:
			stats.PendingBookings++
		case domain.StateCompleted:
			stats.CompletedBookings++
		}
	}
	for _, u := range r.s.users {
		if u.user.Role == domain.RoleClient {
			stats.TotalClients++
		}
	}
	return &stats, nil
}

func (rec *bookingRecord) scheduled() domain.ScheduledBooking {
	return domain.ScheduledBooking{
		BookingID:         rec.booking.ID,
		PhysiotherapistID: rec.booking.PhysiotherapistID,
		Start:             rec.booking.ScheduledAt,
		DurationMinutes:   rec.durationMinutes,
		State:             rec.booking.State,
	}
}

func (s *Store) conflicts(rec *bookingRecord, selfID int64) bool {
	candidate := rec.scheduled()
	if candidate.PhysiotherapistID == nil || candidate.State == domain.StateCancelled {
		return false
	}
	for id, other := range s.bookings {
		if id == selfID {
			continue
		}
		sb := other.scheduled()
		if sb.State == domain.StateCancelled || sb.PhysiotherapistID == nil || *sb.PhysiotherapistID != *candidate.PhysiotherapistID {
			continue
		}
		if sb.Overlaps(candidate.Start, candidate.End()) {
			return true
		}
	}
	return false
}

func (s *Store) detail(rec *bookingRecord) *domain.BookingDetail {
	d := &domain.BookingDetail{
		Booking: rec.booking,
		EndsAt:  rec.booking.ScheduledAt.Add(time.Duration(rec.durationMinutes) * time.Minute),
	}
	if svc, ok := s.services[rec.booking.ServiceID]; ok {
		d.Service = domain.ServiceInfo{ID: svc.ID, Name: svc.Name, Price: svc.Price, DurationMinutes: svc.DurationMinutes}
	}
	if c, ok := s.users[rec.booking.ClientID]; ok {
		d.Client = domain.ClientInfo{
			ID:        c.user.ID,
			FirstName: c.user.FirstName,
			LastName:  c.user.LastName,
			Email:     c.user.Email,
			Phone:     c.user.Phone,
		}
	}
	if rec.booking.PhysiotherapistID != nil {
		if p, ok := s.users[*rec.booking.PhysiotherapistID]; ok {
			d.Physiotherapist = &domain.PhysiotherapistInfo{ID: p.user.ID, FirstName: p.user.FirstName, LastName: p.user.LastName}
		}
	}
	return d
}

// PaymentRepository in-memory аналог storage/payment.Repository
type PaymentRepository struct {
	s *Store
}

func (r *PaymentRepository) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.payments {
		if existing.PaymentReference == p.PaymentReference {
			return nil, paymentRepo.ErrReferenceExists
		}
	}
	if _, ok := r.s.services[p.ServiceID]; !ok {
		return nil, paymentRepo.ErrReferenceNotFound
	}
	if _, ok := r.s.users[p.ClientID]; !ok {
		return nil, paymentRepo.ErrReferenceNotFound
	}

	p.ID = r.s.id()
	p.CreatedAt = r.s.now()
	stored := *p
	r.s.payments[p.ID] = &stored
	return p, nil
}

func (r *PaymentRepository) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	res := *p
	return &res, nil
}

func (r *PaymentRepository) ListByClient(_ context.Context, clientID int64) ([]*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := make([]*domain.Payment, 0)
	for _, p := range r.s.payments {
		if p.ClientID == clientID {
			cp := *p
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	return res, nil
}

func (r *PaymentRepository) UpdateStatus(_ context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payments[id]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	p.Status = status
	res := *p
	return &res, nil
}
