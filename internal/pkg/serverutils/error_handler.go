package serverutils

import (
	"errors"

	"finance-advisor-be/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors returned by controllers to HTTP
// responses with the standard envelope. Rejections never carry partial data:
// a failed validation mutates nothing, so the body is error-only.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, entity.ErrUnknownFeature),
			errors.Is(err, entity.ErrAdviceNotFound),
			errors.Is(err, entity.ErrAssetNotFound),
			errors.Is(err, entity.ErrUserNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, entity.ErrMissingInput),
			errors.Is(err, entity.ErrInvalidYearInput),
			errors.Is(err, entity.ErrInvalidAmount):
			status = fiber.StatusBadRequest
		case errors.Is(err, entity.ErrInsufficientBalance):
			status = fiber.StatusPaymentRequired
		case errors.Is(err, entity.ErrFeedbackAlreadySet):
			status = fiber.StatusConflict
		case errors.Is(err, entity.ErrInvalidCode),
			errors.Is(err, entity.ErrCodeExpired):
			status = fiber.StatusUnauthorized
		default:
			var validationErrs validator.ValidationErrors
			var fiberErr *fiber.Error
			if errors.As(err, &validationErrs) {
				status = fiber.StatusBadRequest
			} else if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": err.Error(),
		})
	}
}
