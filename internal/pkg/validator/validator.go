package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check runs the struct's validate tags and returns field->rule for every
// violation, or nil when the value is valid.
func Check(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
