package models

import (
	"strings"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Request модели

// UpdateProfileRequest частичное обновление профиля. Email и роль не меняются.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,numeric,max=10"`
}

// Normalize обрезает пробелы
func (r *UpdateProfileRequest) Normalize() {
	for _, field := range []**string{&r.FirstName, &r.LastName, &r.Phone} {
		if *field != nil {
			trimmed := strings.TrimSpace(**field)
			*field = &trimmed
		}
	}
}

// IsEmpty true, если ни одно поле не передано
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Phone == nil
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateProfileRequest) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

// Response модели

// UserResponse профиль пользователя
type UserResponse struct {
	ID        int64      `json:"id"`
	Role      string     `json:"role"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// ClientResponse клиент со статистикой посещений
type ClientResponse struct {
	ID               int64      `json:"id"`
	FullName         string     `json:"fullName"`
	Email            string     `json:"email"`
	Phone            *string    `json:"phone,omitempty"`
	TotalBookings    int        `json:"totalBookings"`
	LastVisit        *time.Time `json:"lastVisit,omitempty"`
	PreferredService *string    `json:"preferredService,omitempty"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// FromDomainClientStats конвертирует статистику клиента в DTO
func FromDomainClientStats(c *domain.ClientStats) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:               c.ID,
		FullName:         c.FullName,
		Email:            c.Email,
		Phone:            c.Phone,
		TotalBookings:    c.TotalBookings,
		LastVisit:        c.LastVisit,
		PreferredService: c.PreferredService,
	}
}

// FromDomainClientStatsList конвертирует список клиентов
func FromDomainClientStatsList(clients []*domain.ClientStats) *ClientListResponse {
	resp := &ClientListResponse{Clients: make([]ClientResponse, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, *FromDomainClientStats(c))
	}
	return resp
}
