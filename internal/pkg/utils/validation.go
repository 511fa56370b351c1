package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "ADMIN" || value == "DOCTOR"
}
