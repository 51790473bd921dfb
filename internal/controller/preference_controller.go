package controller

import (
	"ai-beautybot-be/internal/dto"
	"ai-beautybot-be/internal/pkg/serverutils"
	"ai-beautybot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	GetTheme(ctx *fiber.Ctx) error
	SetTheme(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service service.IPreferenceService
}

func NewPreferenceController(service service.IPreferenceService) IPreferenceController {
	return &preferenceController{service: service}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preference/v1")
	h.Get("/theme/:sessionId", c.GetTheme)
	h.Put("/theme/:sessionId", c.SetTheme)
}

func (c *preferenceController) GetTheme(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	theme, err := c.service.GetTheme(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get theme", dto.GetThemeResponse{Theme: theme}))
}

func (c *preferenceController) SetTheme(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("sessionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	var req dto.SetThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SetTheme(ctx.Context(), sessionId, req.Theme); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success set theme", nil))
}
