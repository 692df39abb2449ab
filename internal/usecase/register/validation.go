package register

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// normalize приводит email к нижнему регистру и обрезает пробелы
func normalize(req *Request) *Request {
	n := *req
	n.FirstName = strings.TrimSpace(n.FirstName)
	n.LastName = strings.TrimSpace(n.LastName)
	n.Email = strings.ToLower(strings.TrimSpace(n.Email))
	if n.Phone != nil {
		phone := strings.TrimSpace(*n.Phone)
		if phone == "" {
			n.Phone = nil
		} else {
			n.Phone = &phone
		}
	}
	return &n
}

// validateRequest валидирует входные данные по тегам Request
func validateRequest(req *Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: field %s failed on '%s'", ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
