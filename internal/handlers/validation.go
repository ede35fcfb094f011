package handlers

import (
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("datekey", validateDateKey)
}

// validateDateKey accepts strings in domain.DateKeyLayout.
func validateDateKey(fl validator.FieldLevel) bool {
	_, err := domain.ParseDateKey(fl.Field().String())
	return err == nil
}
