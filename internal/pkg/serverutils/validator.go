// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"consulta-ai-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO's validate tags and converts the first
// failure into a ValidationError with a client-facing message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return apperr.Validation("Todos los campos son obligatorios")
	}
	return apperr.Validation("Cuerpo de la petición inválido")
}
