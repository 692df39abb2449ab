package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	paymentRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/payment"
	serviceRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/service"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/payments/models"
)

// Service сервис учета платежей. Деньги не проводятся, платеж только фиксируется.
type Service struct {
	paymentRepo PaymentRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	newRef      ReferenceGenerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(
	paymentRepo PaymentRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		newRef:      uuid.NewString,
		logger:      logger,
	}
}

// Create фиксирует платеж в статусе PENDING
// Клиент создает платежи только на себя. Без ссылки генерируется UUID.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	if err := validateStruct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	clientID := actor.UserID
	if req.ClientID != nil {
		clientID = *req.ClientID
	}

	s.logger.Info("Create: payment for client=%d, service=%d by user=%d", clientID, req.ServiceID, actor.UserID)

	if err := policy.Authorize(actor, policy.OpCreatePayment, policy.Owner(clientID)); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	if _, err := s.serviceRepo.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Create: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Create: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: Create - get service: %v", ErrInternal, err)
	}

	reference := s.newRef()
	if req.PaymentReference != nil {
		reference = strings.TrimSpace(*req.PaymentReference)
	}

	currency := domain.DefaultCurrency
	if req.Currency != "" {
		currency = strings.ToUpper(req.Currency)
	}

	created, err := s.paymentRepo.Create(ctx, &domain.Payment{
		PaymentReference: reference,
		ServiceID:        req.ServiceID,
		ClientID:         clientID,
		Amount:           req.Amount,
		Currency:         currency,
		Status:           domain.PaymentPending,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentRepo.ErrReferenceExists):
			s.logger.Warn("Create: payment reference %q already exists", reference)
			return nil, ErrReferenceExists
		case errors.Is(err, paymentRepo.ErrReferenceNotFound):
			s.logger.Warn("Create: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		default:
			s.logger.Error("Create: repository error: %v", err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Create: payment id=%d created", created.ID)
	return models.FromDomainPayment(created), nil
}

// GetMy платежи текущего пользователя
func (s *Service) GetMy(ctx context.Context, actor domain.Actor) (*models.PaymentListResponse, error) {
	if err := policy.Authorize(actor, policy.OpListMyPayments, nil); err != nil {
		s.logger.Warn("GetMy: %v", err)
		return nil, err
	}

	payments, err := s.paymentRepo.ListByClient(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("GetMy: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: GetMy - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(payments), nil
}

// GetByID получает платеж. Клиент видит только свои платежи.
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.PaymentResponse, error) {
	if actor.IsZero() {
		return nil, policy.ErrUnauthenticated
	}

	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByID: payment id=%d not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByID: repository error for payment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := policy.Authorize(actor, policy.OpReadPayment, policy.Owner(p.ClientID)); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to payment id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainPayment(p), nil
}

// UpdateStatus меняет статус платежа: PENDING -> SUCCEEDED|FAILED, SUCCEEDED -> REFUNDED
func (s *Service) UpdateStatus(ctx context.Context, actor domain.Actor, id int64, req *models.UpdatePaymentStatusRequest) (*models.PaymentResponse, error) {
	s.logger.Info("UpdateStatus: payment id=%d, status=%s by user=%d", id, req.Status, actor.UserID)

	if err := policy.Authorize(actor, policy.OpUpdatePaymentStatus, nil); err != nil {
		s.logger.Warn("UpdateStatus: %v", err)
		return nil, err
	}

	next, err := domain.ParsePaymentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: %v", err)
		return nil, err
	}

	var result *domain.Payment
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.paymentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get payment: %v", ErrInternal, err)
		}

		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrIllegalPaymentTransition, current.Status, next)
		}

		result, err = s.paymentRepo.UpdateStatus(txCtx, id, next)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if domain.KindOf(err) == domain.ErrInternal {
			s.logger.Error("UpdateStatus: payment id=%d: %v", id, err)
		} else {
			s.logger.Warn("UpdateStatus: payment id=%d: %v", id, err)
		}
		return nil, err
	}

	return models.FromDomainPayment(result), nil
}
