// Package policy ролевая модель доступа: ADMIN видит и меняет всё, CLIENT только свои данные
package policy

import (
	"fmt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

var (
	// ErrUnauthenticated актор не передан или не распознан
	ErrUnauthenticated = domain.NewError(domain.ErrUnauthenticated, "authentication required")

	// ErrAccessDenied у актора нет прав на операцию
	ErrAccessDenied = domain.NewError(domain.ErrForbidden, "access denied")
)

// Authorize проверяет, может ли actor выполнить op над ресурсом владельца ownerID
// ownerID нужен только для операций "владелец или администратор"; nil для них означает отказ клиенту
func Authorize(actor domain.Actor, op Operation, ownerID *int64) error {
	if actor.IsZero() {
		return ErrUnauthenticated
	}

	sc, ok := scopes[op]
	if !ok {
		return fmt.Errorf("%w: unknown operation %q", ErrAccessDenied, op)
	}

	switch sc {
	case scopeAuthenticated:
		return nil

	case scopeAdmin:
		if actor.IsAdmin() {
			return nil
		}

	case scopeOwnerOrAdmin:
		if actor.IsAdmin() {
			return nil
		}
		if ownerID != nil && *ownerID == actor.UserID {
			return nil
		}
	}

	return fmt.Errorf("%w: %s by user %d", ErrAccessDenied, op, actor.UserID)
}

// Owner удобная обертка для передачи ID владельца
func Owner(id int64) *int64 {
	return &id
}
