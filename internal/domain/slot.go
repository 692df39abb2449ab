package domain

import "github.com/myphysiotime/PhysioTime-BookingService/pkg/types"

// TimeSlot candidate start time with availability flag. Never persisted.
type TimeSlot struct {
	Time      types.TimeOfDay
	Available bool
}
