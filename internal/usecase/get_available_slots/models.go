package get_available_slots

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Actor           domain.Actor
	Date            time.Time // Дата (время игнорируется)
	DurationMinutes int       // 0 - длительность по умолчанию
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time
	DurationMinutes int
	Slots           []domain.TimeSlot
}
