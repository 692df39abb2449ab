package create_booking

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor       domain.Actor // Кто создает запись
	ServiceID   int64        // ID услуги
	ClientID    *int64       // Для кого запись; nil - для самого актора
	ScheduledAt time.Time    // Начало визита
	Notes       *string      // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking         *domain.Booking
	DurationMinutes int
	EndsAt          time.Time
}
