package login

import (
	"context"

	loginUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/login"
)

type LoginUseCase interface {
	Execute(ctx context.Context, req *loginUC.Request) (*loginUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
