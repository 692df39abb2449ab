package domain

import "time"

// Service услуга каталога клиники
// Неактивные услуги не показываются в публичном каталоге и недоступны для новых бронирований,
// но остаются валидными для истории
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
}

// ServiceUpdate изменяемые поля услуги. nil - поле не меняется
type ServiceUpdate struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	IsActive        *bool
}
