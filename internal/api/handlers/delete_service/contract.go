package delete_service

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

type CatalogService interface {
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
