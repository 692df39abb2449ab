package models

import (
	"strings"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=1,max=480"`
	IsActive        *bool   `json:"isActive,omitempty"` // По умолчанию true
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateServiceRequest) ToDomain() *domain.Service {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.Service{
		Name:            strings.TrimSpace(r.Name),
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		IsActive:        active,
	}
}

// UpdateServiceRequest частичное обновление услуги
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	DurationMinutes *int     `json:"durationMinutes,omitempty" validate:"omitempty,min=1,max=480"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// IsEmpty true, если ни одно поле не передано
func (r *UpdateServiceRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.DurationMinutes == nil && r.IsActive == nil
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateServiceRequest) ToDomain() domain.ServiceUpdate {
	update := domain.ServiceUpdate{
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		IsActive:        r.IsActive,
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		update.Name = &name
	}
	return update
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, *FromDomainService(s))
	}
	return resp
}
