package domain

// Role роль пользователя
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Actor аутентифицированный пользователь, от имени которого выполняется операция
// Извлекается из JWT в middleware Auth
type Actor struct {
	UserID int64
	Email  string
	Role   Role
}

// IsZero true, если актор не аутентифицирован
func (a Actor) IsZero() bool {
	return a.UserID <= 0 || !a.Role.IsValid()
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
