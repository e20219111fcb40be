// FILE: internal/pkg/serverutils/response.go
package serverutils

import (
	"consulta-ai-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// RespondError maps a service error to its HTTP status and the JSON
// {"message": ...} body every route uses for failures.
func RespondError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(apperr.StatusCode(err)).JSON(fiber.Map{
		"message": apperr.ClientMessage(err),
	})
}
