package policy

// Operation бизнес-операция, доступ к которой проверяет политика
type Operation string

const (
	OpListClients         Operation = "clients.list"
	OpGetClient           Operation = "clients.get"
	OpListAllBookings     Operation = "bookings.list_all"
	OpListBookingsByState Operation = "bookings.list_by_state"
	OpDashboardStats      Operation = "bookings.dashboard"
	OpDeleteBooking       Operation = "bookings.delete"
	OpAssignPhysio        Operation = "bookings.assign_physiotherapist"
	OpManageServices      Operation = "services.manage"
	OpListAllServices     Operation = "services.list_all"
	OpUpdatePaymentStatus Operation = "payments.update_status"

	OpReadBooking   Operation = "bookings.read"
	OpCreateBooking Operation = "bookings.create"
	OpUpdateBooking Operation = "bookings.update"
	OpCreatePayment Operation = "payments.create"
	OpReadPayment   Operation = "payments.read"
	OpUpdateProfile Operation = "users.update_profile"

	OpGetAvailableSlots Operation = "bookings.slots"
	OpListMyBookings    Operation = "bookings.list_my"
	OpListMyPayments    Operation = "payments.list_my"
	OpReadProfile       Operation = "users.read_profile"
)

type scope int

const (
	scopeAdmin scope = iota + 1
	scopeOwnerOrAdmin
	scopeAuthenticated
)

var scopes = map[Operation]scope{
	OpListClients:         scopeAdmin,
	OpGetClient:           scopeAdmin,
	OpListAllBookings:     scopeAdmin,
	OpListBookingsByState: scopeAdmin,
	OpDashboardStats:      scopeAdmin,
	OpDeleteBooking:       scopeAdmin,
	OpAssignPhysio:        scopeAdmin,
	OpManageServices:      scopeAdmin,
	OpListAllServices:     scopeAdmin,
	OpUpdatePaymentStatus: scopeAdmin,

	OpReadBooking:   scopeOwnerOrAdmin,
	OpCreateBooking: scopeOwnerOrAdmin,
	OpUpdateBooking: scopeOwnerOrAdmin,
	OpCreatePayment: scopeOwnerOrAdmin,
	OpReadPayment:   scopeOwnerOrAdmin,
	OpUpdateProfile: scopeOwnerOrAdmin,

	OpGetAvailableSlots: scopeAuthenticated,
	OpListMyBookings:    scopeAuthenticated,
	OpListMyPayments:    scopeAuthenticated,
	OpReadProfile:       scopeAuthenticated,
}
