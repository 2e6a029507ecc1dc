// FILE: internal/controller/balance_controller.go
package controller

import (
	"finance-advisor-be/internal/dto"
	"finance-advisor-be/internal/pkg/serverutils"
	"finance-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBalanceController interface {
	RegisterRoutes(r fiber.Router)
	GetBalance(ctx *fiber.Ctx) error
	Deposit(ctx *fiber.Ctx) error
	ListTransactions(ctx *fiber.Ctx) error
}

type balanceController struct {
	balanceService service.IBalanceService
}

func NewBalanceController(balanceService service.IBalanceService) IBalanceController {
	return &balanceController{
		balanceService: balanceService,
	}
}

func (c *balanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/balance/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetBalance)
	h.Post("/deposit", c.Deposit)
	h.Get("/transactions", c.ListTransactions)
}

func (c *balanceController) GetBalance(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.balanceService.GetBalance(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get balance", res))
}

func (c *balanceController) Deposit(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.DepositRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.balanceService.Deposit(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Funds added", res))
}

func (c *balanceController) ListTransactions(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.balanceService.ListTransactions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list transactions", res))
}
