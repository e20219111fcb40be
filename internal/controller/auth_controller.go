// FILE: internal/controller/auth_controller.go
package controller

import (
	"consulta-ai-be/internal/dto"
	"consulta-ai-be/internal/pkg/serverutils"
	"consulta-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Todos los campos son obligatorios",
		})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.RespondError(ctx, err)
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Credenciales Incorrectas",
		})
	}
	if req.Email == "" || req.Password == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Credenciales Incorrectas",
		})
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(res)
}
