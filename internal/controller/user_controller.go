// FILE: internal/controller/user_controller.go
package controller

import (
	"io"

	"consulta-ai-be/internal/dto"
	"consulta-ai-be/internal/pkg/serverutils"
	"consulta-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authGate fiber.Handler)
	GetPerfil(ctx *fiber.Ctx) error
	UpdatePerfil(ctx *fiber.Ctx) error
	UploadFoto(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, authGate fiber.Handler) {
	r.Get("/perfil", authGate, c.GetPerfil)
	r.Put("/perfil", authGate, c.UpdatePerfil)
	r.Post("/perfil/foto", authGate, c.UploadFoto)
}

func (c *userController) GetPerfil(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.service.GetPerfil(ctx.Context(), userId)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *userController) UpdatePerfil(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.UpdatePerfilRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": `El campo "nombre" es obligatorio`,
		})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": `El campo "nombre" es obligatorio`,
		})
	}

	res, err := c.service.UpdatePerfil(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *userController) UploadFoto(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	fileHeader, err := ctx.FormFile("profileImage")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No se ha subido ningún archivo",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	url, err := c.service.UploadFoto(ctx.Context(), userId, data, fileHeader.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return serverutils.RespondError(ctx, err)
	}

	return ctx.JSON(dto.FotoResponse{
		Message:         "Foto de perfil actualizada",
		ProfileImageURL: url,
	})
}
