package register

import (
	"context"

	registerUC "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/register"
)

type RegisterUseCase interface {
	Execute(ctx context.Context, req *registerUC.Request) (*registerUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
