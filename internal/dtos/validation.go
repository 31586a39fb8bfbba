package dtos

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateOrEmptyTag accepts "" (clears a nullable date) or a DateLayout date.
const DateOrEmptyTag = "date_or_empty"

// RegisterValidations adds the custom DTO tags to v. Both gin's binding engine
// and the services' validator need them.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation(DateOrEmptyTag, dateOrEmpty)
}

func dateOrEmpty(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
