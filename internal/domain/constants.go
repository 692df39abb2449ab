package domain

// Default values
const (
	DefaultSlotDurationMinutes = 60
	DefaultCurrency            = "MXN"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 1
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxNotesLength         = 1000
	MaxPhoneLength         = 10
	MaxNameLength          = 100
	MaxServiceNameLength   = 200
	MinPasswordLength      = 8
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // локальное время клиники
)

// ActiveStates состояния, в которых бронирование занимает слот
var ActiveStates = []BookingState{
	StatePending,
	StateConfirmed,
	StateCompleted,
}
