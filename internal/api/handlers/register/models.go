package register

import (
	"time"

	registerUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/register"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Password  string  `json:"password"`
}

// UserResponse HTTP response model
type UserResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"createdAt"`
}

func (r *RegisterRequest) ToUseCaseRequest() *registerUC.Request {
	return &registerUC.Request{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
	}
}

func FromUseCaseResponse(resp *registerUC.Response) *UserResponse {
	return &UserResponse{
		ID:        resp.ID,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Role:      string(resp.Role),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
