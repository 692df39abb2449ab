package domain

import "fmt"

var (
	// ErrIllegalTransition переход отсутствует в таблице переходов
	ErrIllegalTransition = NewError(ErrValidation, "illegal booking state transition")

	// ErrTransitionForbidden переход существует, но роли он запрещен
	ErrTransitionForbidden = NewError(ErrForbidden, "role is not allowed to perform this booking state transition")
)

type stateTransition struct {
	from BookingState
	to   BookingState
}

// Таблица разрешенных переходов и ролей, которым они доступны.
// Всё, чего нет в таблице, запрещено. Из COMPLETED и CANCELLED переходов нет.
var stateTransitions = map[stateTransition][]Role{
	{from: StatePending, to: StateConfirmed}:   {RoleAdmin},
	{from: StateConfirmed, to: StateCompleted}: {RoleAdmin},
	{from: StatePending, to: StateCancelled}:   {RoleAdmin, RoleClient},
	{from: StateConfirmed, to: StateCancelled}: {RoleAdmin, RoleClient},
}

// Transition проверяет переход current -> requested для роли и возвращает новое состояние
// Переход в текущее состояние ничего не меняет и разрешен всегда
func Transition(current, requested BookingState, role Role) (BookingState, error) {
	if current == requested {
		return current, nil
	}

	roles, ok := stateTransitions[stateTransition{from: current, to: requested}]
	if !ok {
		return current, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, requested)
	}

	for _, r := range roles {
		if r == role {
			return requested, nil
		}
	}

	return current, fmt.Errorf("%w: %s -> %s by %s", ErrTransitionForbidden, current, requested, role)
}

// NextStates состояния, в которые роль может перевести бронирование из current
func NextStates(current BookingState, role Role) []BookingState {
	var next []BookingState
	for _, to := range []BookingState{StatePending, StateConfirmed, StateCompleted, StateCancelled} {
		roles, ok := stateTransitions[stateTransition{from: current, to: to}]
		if !ok {
			continue
		}
		for _, r := range roles {
			if r == role {
				next = append(next, to)
				break
			}
		}
	}
	return next
}
