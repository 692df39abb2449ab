package login

import loginUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/login"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo краткие данные вошедшего пользователя
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

func (r *LoginRequest) ToUseCaseRequest() *loginUC.Request {
	return &loginUC.Request{
		Email:    r.Email,
		Password: r.Password,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loginUC.Response) *LoginResponse {
	return &LoginResponse{
		Token: resp.Token,
		User: UserInfo{
			ID:    resp.UserID,
			Email: resp.Email,
			Role:  string(resp.Role),
		},
	}
}
