// FILE: internal/controller/chat_controller.go
package controller

import (
	"consulta-ai-be/internal/dto"
	"consulta-ai-be/internal/pkg/serverutils"
	"consulta-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, authGate fiber.Handler)
	Consulta(ctx *fiber.Ctx) error
	Historial(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, authGate fiber.Handler) {
	r.Post("/consulta", authGate, c.Consulta)
	r.Get("/historial", authGate, c.Historial)
}

func (c *chatController) Consulta(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.ConsultaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": `El campo "prompt" es obligatorio`,
		})
	}

	res, err := c.service.Consultar(ctx.Context(), userId, req.Prompt)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *chatController) Historial(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	historial, err := c.service.Historial(ctx.Context(), userId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(historial)
}
