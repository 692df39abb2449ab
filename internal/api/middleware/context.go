// Package middleware HTTP middleware: аутентификация, метрики, request id, CORS, восстановление после panic
package middleware

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

type actorKey struct{}

type requestIDKey struct{}

// WithActor кладет аутентифицированного пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor возвращает пользователя, установленный Auth
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok && !actor.IsZero()
}

// GetRequestID возвращает id запроса, установленный RequestID
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
