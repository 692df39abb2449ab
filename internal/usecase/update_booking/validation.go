package update_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if req.State == nil && req.Notes == nil && req.PhysiotherapistID == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.State != nil {
		if _, err := domain.ParseBookingState(string(*req.State)); err != nil {
			return err
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.PhysiotherapistID != nil && *req.PhysiotherapistID <= 0 {
		return fmt.Errorf("%w: physiotherapistId must be positive", ErrInvalidInput)
	}

	return nil
}
