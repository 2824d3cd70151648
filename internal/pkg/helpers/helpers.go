package helpers

import (
	"net/http"

	"petcare-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.HTTPCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		// internal details stay in the log, not the response body
		message = "internal server error"
	}
	return ctx.Status(code).JSON(Response{
		Success: false,
		Message: message,
	})
}
