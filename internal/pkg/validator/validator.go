package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return IsClock(fl.Field().String())
	})
	_ = validate.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
		return IsDate(fl.Field().String())
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// IsClock reports whether s is a wall-clock "HH:MM" value.
func IsClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// IsDate reports whether s is a calendar "YYYY-MM-DD" value.
func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
