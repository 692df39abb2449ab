package login

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

// Request входные данные для входа
type Request struct {
	Email    string
	Password string
}

// Response токен и идентичность пользователя
type Response struct {
	Token  string
	UserID int64
	Email  string
	Role   domain.Role
}
