package serverutils

import (
	"errors"

	"saas-notes-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// LimitExceededData is the data payload for 429 responses
type LimitExceededData struct {
	Limit            interface{} `json:"limit"`
	Used             interface{} `json:"used"`
	ShowModalPricing bool        `json:"show_modal_pricing"`
}

func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err)
	}
}

// WriteError renders err with the status matching its kind.
func WriteError(ctx *fiber.Ctx, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		status := StatusFor(appErr)
		switch appErr.Kind {
		case apperror.KindLimit:
			return ctx.Status(status).JSON(ErrorResponseWithData(status, appErr.Message, LimitExceededData{
				Limit:            appErr.Details["limit"],
				Used:             appErr.Details["used"],
				ShowModalPricing: true,
			}))
		case apperror.KindValidation:
			return ctx.Status(status).JSON(ErrorResponseWithData(status, appErr.Message, appErr.Details))
		default:
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}

func StatusFor(err *apperror.Error) int {
	switch err.Kind {
	case apperror.KindAuth:
		if err.Code == apperror.CodeForbidden {
			return fiber.StatusForbidden
		}
		return fiber.StatusUnauthorized
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindLimit:
		return fiber.StatusTooManyRequests
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
