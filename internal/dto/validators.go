package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// namePattern allows letters, spaces, hyphens and apostrophes.
var namePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

// RegisterCustomValidators installs the binding rules used by the request
// DTOs on gin's validator engine. Must be called before the router serves
// requests (and in handler tests).
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
}
