package bcrypt

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHash возвращается при ошибке вычисления хэша
var ErrHash = errors.New("bcrypt: failed to hash password")

// Hasher хэширование паролей через bcrypt
type Hasher struct {
	cost int
}

// NewHasher создает Hasher. cost <= 0 - bcrypt.DefaultCost
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает соленый хэш пароля
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHash, err)
	}
	return string(hash), nil
}

// Verify сравнивает пароль с хэшем
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
