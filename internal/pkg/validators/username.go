package validators

import (
	"github.com/go-playground/validator/v10"
)

// UsernameTag is the struct tag name UsernameValidation is registered under
const UsernameTag = "username"

// UsernameValidation accepts ASCII letters, digits, dots, dashes and underscores.
func UsernameValidation(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// New returns a validator with the shop's custom validations registered
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation(UsernameTag, UsernameValidation); err != nil {
		return nil, err
	}

	return validate, nil
}
