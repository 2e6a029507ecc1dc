// FILE: internal/controller/advisor_controller.go
package controller

import (
	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/pkg/serverutils"
	"finance-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdvisorController interface {
	RegisterRoutes(r fiber.Router)
	ListFeatures(ctx *fiber.Ctx) error
	Purchase(ctx *fiber.Ctx) error
	ListRequests(ctx *fiber.Ctx) error
	MarkDone(ctx *fiber.Ctx) error
	ProvideFeedback(ctx *fiber.Ctx) error
}

type advisorController struct {
	advisorService service.IAdvisorService
}

func NewAdvisorController(advisorService service.IAdvisorService) IAdvisorController {
	return &advisorController{
		advisorService: advisorService,
	}
}

func (c *advisorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/advisor/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/features", c.ListFeatures)
	h.Post("/purchase", c.Purchase)
	h.Get("/requests", c.ListRequests)
	h.Put("/requests/:id/done", c.MarkDone)
	h.Put("/requests/:id/feedback", c.ProvideFeedback)
}

func (c *advisorController) ListFeatures(ctx *fiber.Ctx) error {
	res, err := c.advisorService.ListFeatures(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list features", res))
}

func (c *advisorController) Purchase(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.PurchaseAdviceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.advisorService.Purchase(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Advice generated", res))
}

func (c *advisorController) ListRequests(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.advisorService.ListRequests(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list advice requests", res))
}

func (c *advisorController) MarkDone(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	res, err := c.advisorService.MarkDone(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Advice marked as done", res))
}

func (c *advisorController) ProvideFeedback(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.advisorService.ProvideFeedback(ctx.Context(), userId, id, *req.IsHelpful)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback recorded", res))
}
