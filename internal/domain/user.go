package domain

import "time"

// User пользователь системы (администратор/физиотерапевт или клиент)
type User struct {
	ID        int64
	Role      Role
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	CreatedAt time.Time
	LastLogin *time.Time
}

// FullName имя и фамилия через пробел
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserCredentials данные для проверки пароля
// Хэш пароля хранится только здесь и никогда не попадает в User
type UserCredentials struct {
	UserID       int64
	Email        string
	PasswordHash string
	Role         Role
}

// NewUser данные для создания пользователя
type NewUser struct {
	Role         Role
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	PasswordHash string
}

// ProfileUpdate изменяемые поля профиля. nil - поле не меняется
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
}

// ClientStats агрегированные данные клиента для администратора
type ClientStats struct {
	ID               int64
	FullName         string
	Email            string
	Phone            *string
	TotalBookings    int
	LastVisit        *time.Time
	PreferredService *string
}
