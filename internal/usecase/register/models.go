package register

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Request данные регистрации клиента
type Request struct {
	FirstName string  `validate:"required,max=100"`
	LastName  string  `validate:"required,max=100"`
	Email     string  `validate:"required,email,max=255"`
	Phone     *string `validate:"omitempty,numeric,max=10"`
	Password  string  `validate:"required,min=8,max=72"`
}

// Response созданный пользователь
type Response struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	Role      domain.Role
	CreatedAt time.Time
}
